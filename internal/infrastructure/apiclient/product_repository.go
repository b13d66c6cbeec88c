package apiclient

import (
	"context"
	"net/http"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
)

// ProductRepository implementa repository.ProductRepository sobre /api/Productos.
type ProductRepository struct {
	c *Client
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository construye el repositorio.
func NewProductRepository(c *Client) *ProductRepository {
	return &ProductRepository{c: c}
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	raw, err := r.c.do(ctx, http.MethodGet, "/Productos", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList(raw, productoWire.toEntity)
}

func (r *ProductRepository) ListPaged(ctx context.Context, q repository.PageQuery) (repository.Page[entity.Product], error) {
	raw, err := r.c.do(ctx, http.MethodGet, "/Productos/paged", r.c.pagedQuery(q.Page, q.PageSize, q.Search), nil)
	if err != nil {
		return repository.Page[entity.Product]{}, err
	}
	return decodePage(raw, productoWire.toEntity)
}

func (r *ProductRepository) Create(ctx context.Context, in entity.ProductInput) error {
	return r.c.doJSON(ctx, http.MethodPost, "/Productos", nil, newProductoInput(in), nil)
}

func (r *ProductRepository) Update(ctx context.Context, id int64, in entity.ProductInput) error {
	return r.c.doJSON(ctx, http.MethodPut, idPath("Productos", id), nil, newProductoInput(in), nil)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return r.c.doJSON(ctx, http.MethodDelete, idPath("Productos", id), nil, nil, nil)
}

func (r *ProductRepository) Enable(ctx context.Context, id int64) error {
	return r.c.doJSON(ctx, http.MethodPatch, idPath("Productos", id, "enable"), nil, nil, nil)
}

func (r *ProductRepository) Disable(ctx context.Context, id int64) error {
	return r.c.doJSON(ctx, http.MethodPatch, idPath("Productos", id, "disable"), nil, nil, nil)
}
