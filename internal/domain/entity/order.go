package entity

import "github.com/shopspring/decimal"

// OrderLine línea de detalle de un pedido persistido.
type OrderLine struct {
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// Order pedido persistido en la API.
type Order struct {
	ID        int64
	ClientID  int64
	CountryID int64
	Lines     []OrderLine
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	Status    string
}

// OrderItem par producto/cantidad enviado a la API.
type OrderItem struct {
	ProductID int64
	Quantity  int
}

// OrderRequest cuerpo para crear un pedido o calcular su descuento.
type OrderRequest struct {
	ClientID  int64
	CountryID int64
	Items     []OrderItem
}

// DiscountQuote respuesta del cálculo de descuento del servidor.
type DiscountQuote struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}
