package billing

import (
	"context"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/ordering"
)

// OrdersRefresher recarga el listado de pedidos después de emitir una factura.
type OrdersRefresher interface {
	Refresh(ctx context.Context) error
}

// ProformaPDFGenerator genera la proforma PDF de un borrador de pedido.
// Implementado en infrastructure/pdf.
type ProformaPDFGenerator interface {
	Generate(draft ordering.Draft) ([]byte, error)
}

// DraftSource fuente del borrador actual.
type DraftSource interface {
	Snapshot() ordering.Draft
}
