package apiclient

import (
	"context"
	"net/http"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
)

// OrderRepository implementa repository.OrderRepository sobre /api/Pedidos.
type OrderRepository struct {
	c *Client
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

// NewOrderRepository construye el repositorio.
func NewOrderRepository(c *Client) *OrderRepository {
	return &OrderRepository{c: c}
}

func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	raw, err := r.c.do(ctx, http.MethodGet, "/Pedidos", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList(raw, pedidoWire.toEntity)
}

func (r *OrderRepository) ListPaged(ctx context.Context, q repository.PageQuery) (repository.Page[entity.Order], error) {
	raw, err := r.c.do(ctx, http.MethodGet, "/Pedidos/paged", r.c.pagedQuery(q.Page, q.PageSize, q.Search), nil)
	if err != nil {
		return repository.Page[entity.Order]{}, err
	}
	return decodePage(raw, pedidoWire.toEntity)
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	var w pedidoWire
	if err := r.c.doJSON(ctx, http.MethodGet, idPath("Pedidos", id), nil, nil, &w); err != nil {
		return nil, err
	}
	o := w.toEntity()
	return &o, nil
}

// Create registra el pedido. Si la API no devuelve cuerpo, el pedido retornado
// solo conserva los datos enviados.
func (r *OrderRepository) Create(ctx context.Context, req entity.OrderRequest) (*entity.Order, error) {
	var w pedidoWire
	if err := r.c.doJSON(ctx, http.MethodPost, "/Pedidos", nil, newPedidoRequest(req), &w); err != nil {
		return nil, err
	}
	o := w.toEntity()
	if o.ClientID == 0 {
		o.ClientID = req.ClientID
	}
	if o.CountryID == 0 {
		o.CountryID = req.CountryID
	}
	return &o, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	return r.c.doJSON(ctx, http.MethodDelete, idPath("Pedidos", id), nil, nil, nil)
}

func (r *OrderRepository) CalculateDiscount(ctx context.Context, req entity.OrderRequest) (entity.DiscountQuote, error) {
	var w descuentoWire
	if err := r.c.doJSON(ctx, http.MethodPost, "/Pedidos/calcular-descuento", nil, newPedidoRequest(req), &w); err != nil {
		return entity.DiscountQuote{}, err
	}
	return entity.DiscountQuote{Subtotal: w.Subtotal, Discount: w.Descuento, Total: w.Total}, nil
}
