// Package billing flujos de facturación: emisión de factura de un pedido y
// proforma PDF del borrador.
package billing

import (
	"context"
	"fmt"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
)

// MsgInvoiceFailed mensaje de respaldo al facturar.
const MsgInvoiceFailed = "Error al facturar"

// InvoiceFlow consulta-y-emite la factura de un pedido. No hay bloqueo: dos
// consolas pueden emitir a la vez y la API decide.
type InvoiceFlow struct {
	invoices repository.InvoiceRepository
	orders   OrdersRefresher
	log      *logger.Logger
}

// NewInvoiceFlow construye el flujo.
func NewInvoiceFlow(invoices repository.InvoiceRepository, orders OrdersRefresher, log *logger.Logger) *InvoiceFlow {
	return &InvoiceFlow{invoices: invoices, orders: orders, log: log.Named("billing")}
}

// Open devuelve la URL del PDF de la factura del pedido. Si ya existe una con
// documento, no se emite otra. Si no, se emite y se recarga el listado.
func (f *InvoiceFlow) Open(ctx context.Context, orderID int64) (string, error) {
	existing, err := f.invoices.GetByOrder(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("consultar factura del pedido %d: %w", orderID, err)
	}
	if existing.HasDocument() {
		f.log.Debug().Int64("pedido_id", orderID).Str("factura", existing.Number).Msg("factura existente")
		return existing.PDFURL, nil
	}

	issued, err := f.invoices.Issue(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("emitir factura del pedido %d: %w", orderID, err)
	}
	f.log.Info().Int64("pedido_id", orderID).Str("factura", issued.Number).Msg("factura emitida")

	if f.orders != nil {
		if err := f.orders.Refresh(ctx); err != nil {
			f.log.Warn().Err(err).Msg("no se pudo recargar el listado de pedidos")
		}
	}
	if issued.PDFURL == "" {
		return "", fmt.Errorf("la factura %s no tiene documento PDF", issued.Number)
	}
	return issued.PDFURL, nil
}
