package apiclient

import (
	"context"
	"net/http"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
)

// ClientRepository implementa repository.ClientRepository sobre /api/Clientes.
type ClientRepository struct {
	c *Client
}

var _ repository.ClientRepository = (*ClientRepository)(nil)

// NewClientRepository construye el repositorio.
func NewClientRepository(c *Client) *ClientRepository {
	return &ClientRepository{c: c}
}

func (r *ClientRepository) List(ctx context.Context) ([]entity.Client, error) {
	raw, err := r.c.do(ctx, http.MethodGet, "/Clientes", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList(raw, clienteWire.toEntity)
}

func (r *ClientRepository) ListPaged(ctx context.Context, q repository.PageQuery) (repository.Page[entity.Client], error) {
	raw, err := r.c.do(ctx, http.MethodGet, "/Clientes/paged", r.c.pagedQuery(q.Page, q.PageSize, q.Search), nil)
	if err != nil {
		return repository.Page[entity.Client]{}, err
	}
	return decodePage(raw, clienteWire.toEntity)
}

func (r *ClientRepository) Create(ctx context.Context, in entity.ClientInput) error {
	return r.c.doJSON(ctx, http.MethodPost, "/Clientes", nil, newClienteInput(in), nil)
}

func (r *ClientRepository) Update(ctx context.Context, id int64, in entity.ClientInput) error {
	return r.c.doJSON(ctx, http.MethodPut, idPath("Clientes", id), nil, newClienteInput(in), nil)
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	return r.c.doJSON(ctx, http.MethodDelete, idPath("Clientes", id), nil, nil, nil)
}

func (r *ClientRepository) Enable(ctx context.Context, id int64) error {
	return r.c.doJSON(ctx, http.MethodPatch, idPath("Clientes", id, "enable"), nil, nil, nil)
}

func (r *ClientRepository) Disable(ctx context.Context, id int64) error {
	return r.c.doJSON(ctx, http.MethodPatch, idPath("Clientes", id, "disable"), nil, nil, nil)
}
