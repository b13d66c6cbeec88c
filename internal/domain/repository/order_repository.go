package repository

import (
	"context"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
)

// OrderRepository puerto del recurso Pedidos.
type OrderRepository interface {
	List(ctx context.Context) ([]entity.Order, error)
	ListPaged(ctx context.Context, q PageQuery) (Page[entity.Order], error)
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	Create(ctx context.Context, req entity.OrderRequest) (*entity.Order, error)
	Delete(ctx context.Context, id int64) error
	CalculateDiscount(ctx context.Context, req entity.OrderRequest) (entity.DiscountQuote, error)
}
