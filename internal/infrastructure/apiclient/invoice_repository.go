package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
)

// InvoiceRepository implementa repository.InvoiceRepository sobre /api/Facturas.
type InvoiceRepository struct {
	c *Client
}

var _ repository.InvoiceRepository = (*InvoiceRepository)(nil)

// NewInvoiceRepository construye el repositorio.
func NewInvoiceRepository(c *Client) *InvoiceRepository {
	return &InvoiceRepository{c: c}
}

func (r *InvoiceRepository) List(ctx context.Context) ([]entity.Invoice, error) {
	raw, err := r.c.do(ctx, http.MethodGet, "/Facturas", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList(raw, facturaWire.toEntity)
}

// GetByOrder devuelve (nil, nil) si la API responde 404 o un cuerpo vacío.
func (r *InvoiceRepository) GetByOrder(ctx context.Context, orderID int64) (*entity.Invoice, error) {
	raw, err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/Facturas/pedido/%d", orderID), nil, nil)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeInvoice(raw)
}

// Issue emite la factura del pedido.
func (r *InvoiceRepository) Issue(ctx context.Context, orderID int64) (*entity.Invoice, error) {
	raw, err := r.c.do(ctx, http.MethodPost, fmt.Sprintf("/Facturas/emitir/%d", orderID), nil, nil)
	if err != nil {
		return nil, err
	}
	inv, err := decodeInvoice(raw)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("apiclient: la emisión de la factura no devolvió datos")
	}
	return inv, nil
}

func decodeInvoice(raw []byte) (*entity.Invoice, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}
	var w facturaWire
	if err := json.Unmarshal(trimmed, &w); err != nil {
		return nil, fmt.Errorf("apiclient: decodificar factura: %w", err)
	}
	inv := w.toEntity()
	return &inv, nil
}
