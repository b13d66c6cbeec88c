package repository

import (
	"context"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
)

// InvoiceRepository puerto del recurso Facturas.
// GetByOrder devuelve (nil, nil) si el pedido aún no tiene factura.
type InvoiceRepository interface {
	List(ctx context.Context) ([]entity.Invoice, error)
	GetByOrder(ctx context.Context, orderID int64) (*entity.Invoice, error)
	Issue(ctx context.Context, orderID int64) (*entity.Invoice, error)
}
