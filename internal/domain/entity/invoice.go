package entity

import "github.com/shopspring/decimal"

// Invoice factura emitida por la API para un pedido (a lo sumo una por pedido).
type Invoice struct {
	ID       int64
	OrderID  int64
	Number   string
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	Status   string
	PDFURL   string
}

// HasDocument indica si la factura ya tiene su representación PDF.
func (i *Invoice) HasDocument() bool { return i != nil && i.PDFURL != "" }
