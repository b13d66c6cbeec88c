package repository

import (
	"context"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
)

// ProductRepository puerto del recurso Productos de la API.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	ListPaged(ctx context.Context, q PageQuery) (Page[entity.Product], error)
	Create(ctx context.Context, in entity.ProductInput) error
	Update(ctx context.Context, id int64, in entity.ProductInput) error
	Delete(ctx context.Context, id int64) error
	Enable(ctx context.Context, id int64) error
	Disable(ctx context.Context, id int64) error
}
