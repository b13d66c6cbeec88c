// Package ordering constructor del pedido en borrador: líneas con tope de stock,
// totales derivados (descuento del servidor e impuesto del país) y envío.
package ordering

import (
	"github.com/shopspring/decimal"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/money"
)

// Line línea del borrador; a lo sumo una por producto.
type Line struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Stock     int // stock conocido al agregar la línea
	Subtotal  decimal.Decimal
}

func (l *Line) recompute() {
	l.Subtotal = l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals importes derivados del borrador.
//
//	net   = subtotal - discount
//	tax   = round2(net * taxPercent / 100)
//	total = net + tax
type Totals struct {
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Net        decimal.Decimal
	TaxPercent decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
}

// Draft copia inmutable del borrador para vistas y PDF.
type Draft struct {
	Client  *entity.Client
	Country *entity.Country
	Lines   []Line
	Totals  Totals
	// TotalsErr último fallo al consultar descuento o impuestos (totales parciales).
	TotalsErr error
}

// IsEmpty el borrador no tiene líneas.
func (d Draft) IsEmpty() bool { return len(d.Lines) == 0 }

// Ready el borrador puede enviarse.
func (d Draft) Ready() bool { return d.Client != nil && d.Country != nil && len(d.Lines) > 0 }

// Request cuerpo para la API (crear o calcular descuento).
func (d Draft) Request() entity.OrderRequest {
	req := entity.OrderRequest{Items: make([]entity.OrderItem, 0, len(d.Lines))}
	if d.Client != nil {
		req.ClientID = d.Client.ID
	}
	if d.Country != nil {
		req.CountryID = d.Country.ID
	}
	for _, l := range d.Lines {
		req.Items = append(req.Items, entity.OrderItem{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return req
}

func computeTotals(subtotal, discount, taxPercent decimal.Decimal) Totals {
	net := subtotal.Sub(discount)
	tax := money.Round2(net.Mul(taxPercent).Div(decimal.NewFromInt(100)))
	return Totals{
		Subtotal:   subtotal,
		Discount:   discount,
		Net:        net,
		TaxPercent: taxPercent,
		Tax:        tax,
		Total:      net.Add(tax),
	}
}
