package repository

import (
	"context"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
)

// ClientRepository puerto del recurso Clientes de la API.
type ClientRepository interface {
	List(ctx context.Context) ([]entity.Client, error)
	ListPaged(ctx context.Context, q PageQuery) (Page[entity.Client], error)
	Create(ctx context.Context, in entity.ClientInput) error
	Update(ctx context.Context, id int64, in entity.ClientInput) error
	Delete(ctx context.Context, id int64) error
	Enable(ctx context.Context, id int64) error
	Disable(ctx context.Context, id int64) error
}
