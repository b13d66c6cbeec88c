package apiclient

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
)

// ─── Tipos auxiliares ─────────────────────────────────────────────────────────

// amount decimal serializado como número JSON (la API no acepta cadenas).
type amount decimal.Decimal

func (a amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

// flexString acepta número o cadena (estado de pedidos y facturas).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(string(b))
	return nil
}

// flexInt acepta número o cadena numérica (códigos de estado).
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*f = flexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

// ─── Productos ────────────────────────────────────────────────────────────────

type productoWire struct {
	ProductoID  int64           `json:"productoId"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Estado      flexInt         `json:"estado"`
}

func (w productoWire) toEntity() entity.Product {
	return entity.Product{
		ID:          w.ProductoID,
		Name:        w.Nombre,
		Description: w.Descripcion,
		UnitPrice:   w.Precio,
		Stock:       w.Stock,
		Status:      entity.Status(w.Estado),
	}
}

type productoInput struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Precio      amount `json:"precio"`
	Stock       int    `json:"stock"`
}

func newProductoInput(in entity.ProductInput) productoInput {
	return productoInput{
		Nombre:      in.Name,
		Descripcion: in.Description,
		Precio:      amount(in.UnitPrice),
		Stock:       in.Stock,
	}
}

// ─── Clientes ─────────────────────────────────────────────────────────────────

type clienteWire struct {
	ClienteID  int64   `json:"clienteId"`
	Ruc        string  `json:"ruc"`
	Nombre     string  `json:"nombre"`
	Email      string  `json:"email"`
	Telefono   string  `json:"telefono"`
	Direccion  string  `json:"direccion"`
	PaisID     int64   `json:"paisId"`
	PaisNombre string  `json:"paisNombre"`
	Estado     flexInt `json:"estado"`
}

func (w clienteWire) toEntity() entity.Client {
	return entity.Client{
		ID:          w.ClienteID,
		TaxID:       w.Ruc,
		Name:        w.Nombre,
		Email:       w.Email,
		Phone:       w.Telefono,
		Address:     w.Direccion,
		CountryID:   w.PaisID,
		CountryName: w.PaisNombre,
		Status:      entity.Status(w.Estado),
	}
}

type clienteInput struct {
	Ruc       string `json:"ruc"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	PaisID    int64  `json:"paisId"`
}

func newClienteInput(in entity.ClientInput) clienteInput {
	return clienteInput{
		Ruc:       in.TaxID,
		Nombre:    in.Name,
		Email:     in.Email,
		Telefono:  in.Phone,
		Direccion: in.Address,
		PaisID:    in.CountryID,
	}
}

// ─── Países e impuestos ───────────────────────────────────────────────────────

type paisWire struct {
	PaisID int64  `json:"paisId"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

func (w paisWire) toEntity() entity.Country {
	return entity.Country{ID: w.PaisID, Code: w.Codigo, Name: w.Nombre}
}

type impuestoWire struct {
	ImpuestoID int64           `json:"impuestoId"`
	PaisID     int64           `json:"paisId"`
	Nombre     string          `json:"nombre"`
	Porcentaje decimal.Decimal `json:"porcentaje"`
}

func (w impuestoWire) toEntity() entity.TaxRate {
	return entity.TaxRate{ID: w.ImpuestoID, CountryID: w.PaisID, Name: w.Nombre, Percentage: w.Porcentaje}
}

// ─── Pedidos ──────────────────────────────────────────────────────────────────

type detalleWire struct {
	ProductoID     int64           `json:"productoId"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type pedidoWire struct {
	PedidoID  int64           `json:"pedidoId"`
	ClienteID int64           `json:"clienteId"`
	PaisID    int64           `json:"paisId"`
	Detalles  []detalleWire   `json:"detalles"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Descuento decimal.Decimal `json:"descuento"`
	Impuesto  decimal.Decimal `json:"impuesto"`
	Total     decimal.Decimal `json:"total"`
	Estado    flexString      `json:"estado"`
}

func (w pedidoWire) toEntity() entity.Order {
	o := entity.Order{
		ID:        w.PedidoID,
		ClientID:  w.ClienteID,
		CountryID: w.PaisID,
		Subtotal:  w.Subtotal,
		Discount:  w.Descuento,
		Tax:       w.Impuesto,
		Total:     w.Total,
		Status:    string(w.Estado),
	}
	for _, d := range w.Detalles {
		o.Lines = append(o.Lines, entity.OrderLine{
			ProductID:   d.ProductoID,
			ProductName: d.NombreProducto,
			Quantity:    d.Cantidad,
			UnitPrice:   d.PrecioUnitario,
			Subtotal:    d.Subtotal,
		})
	}
	return o
}

type detalleRequest struct {
	ProductoID int64 `json:"productoId"`
	Cantidad   int   `json:"cantidad"`
}

type pedidoRequest struct {
	ClienteID int64            `json:"clienteId"`
	PaisID    int64            `json:"paisId"`
	Detalles  []detalleRequest `json:"detalles"`
}

func newPedidoRequest(req entity.OrderRequest) pedidoRequest {
	out := pedidoRequest{
		ClienteID: req.ClientID,
		PaisID:    req.CountryID,
		Detalles:  make([]detalleRequest, 0, len(req.Items)),
	}
	for _, it := range req.Items {
		out.Detalles = append(out.Detalles, detalleRequest{ProductoID: it.ProductID, Cantidad: it.Quantity})
	}
	return out
}

type descuentoWire struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Descuento decimal.Decimal `json:"descuento"`
	Total     decimal.Decimal `json:"total"`
}

// ─── Facturas ─────────────────────────────────────────────────────────────────

type facturaWire struct {
	FacturaID     int64           `json:"facturaId"`
	PedidoID      int64           `json:"pedidoId"`
	NumeroFactura string          `json:"numeroFactura"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Descuento     decimal.Decimal `json:"descuento"`
	Impuesto      decimal.Decimal `json:"impuesto"`
	Total         decimal.Decimal `json:"total"`
	Estado        flexString      `json:"estado"`
	URLPdf        string          `json:"urlPdf"`
}

func (w facturaWire) toEntity() entity.Invoice {
	return entity.Invoice{
		ID:       w.FacturaID,
		OrderID:  w.PedidoID,
		Number:   w.NumeroFactura,
		Subtotal: w.Subtotal,
		Discount: w.Descuento,
		Tax:      w.Impuesto,
		Total:    w.Total,
		Status:   string(w.Estado),
		PDFURL:   w.URLPdf,
	}
}
