package ordering

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
)

// Mensajes de respaldo.
const (
	MsgSubmitFailed = "No se pudo registrar el pedido"
	MsgTotalsFailed = "No se pudieron calcular descuento e impuestos"
)

// Builder borrador de pedido del operador. Las llamadas de red se hacen fuera
// del lock; una respuesta de totales que llega después de otra mutación se descarta.
type Builder struct {
	orders    repository.OrderRepository
	countries repository.CountryRepository
	log       *logger.Logger

	mu        sync.Mutex
	client    *entity.Client
	country   *entity.Country
	lines     []Line
	totals    Totals
	totalsErr error
	revision  uint64
	taxCache  map[int64]decimal.Decimal
}

// NewBuilder construye un borrador vacío.
func NewBuilder(orders repository.OrderRepository, countries repository.CountryRepository, log *logger.Logger) *Builder {
	return &Builder{
		orders:    orders,
		countries: countries,
		log:       log.Named("ordering"),
		taxCache:  make(map[int64]decimal.Decimal),
		totals:    computeTotals(decimal.Zero, decimal.Zero, decimal.Zero),
	}
}

// ─── Líneas ───────────────────────────────────────────────────────────────────

// AddLine agrega qty unidades del producto. Si ya hay línea, suma cantidades.
// La cantidad resultante no puede superar el stock: en ese caso el borrador
// queda intacto y no se llama a la API.
func (b *Builder) AddLine(ctx context.Context, p entity.Product, qty int) error {
	if qty < 1 {
		return domain.Invalid("cantidad", "La cantidad debe ser al menos 1")
	}
	if p.Status != entity.StatusActive {
		return domain.Invalid("producto", "El producto no está disponible")
	}

	b.mu.Lock()
	idx := b.indexOf(p.ID)
	merged := qty
	if idx >= 0 {
		merged += b.lines[idx].Quantity
	}
	if merged > p.Stock {
		b.mu.Unlock()
		return domain.ErrInsufficientStock
	}
	if idx >= 0 {
		b.lines[idx].Quantity = merged
		b.lines[idx].Stock = p.Stock
		b.lines[idx].recompute()
	} else {
		line := Line{ProductID: p.ID, Name: p.Name, UnitPrice: p.UnitPrice, Quantity: qty, Stock: p.Stock}
		line.recompute()
		b.lines = append(b.lines, line)
	}
	b.mu.Unlock()

	return b.recalculate(ctx)
}

// SetQuantity reemplaza la cantidad de una línea (mínimo 1). No vuelve a
// comprobar el stock.
func (b *Builder) SetQuantity(ctx context.Context, productID int64, qty int) error {
	if qty < 1 {
		return domain.Invalid("cantidad", "La cantidad debe ser al menos 1")
	}
	b.mu.Lock()
	idx := b.indexOf(productID)
	if idx < 0 {
		b.mu.Unlock()
		return domain.ErrNotFound
	}
	b.lines[idx].Quantity = qty
	b.lines[idx].recompute()
	b.mu.Unlock()

	return b.recalculate(ctx)
}

// RemoveLine quita la línea del producto (sin efecto si no existe).
func (b *Builder) RemoveLine(ctx context.Context, productID int64) error {
	b.mu.Lock()
	idx := b.indexOf(productID)
	if idx < 0 {
		b.mu.Unlock()
		return nil
	}
	b.lines = append(b.lines[:idx], b.lines[idx+1:]...)
	b.mu.Unlock()

	return b.recalculate(ctx)
}

func (b *Builder) indexOf(productID int64) int {
	for i := range b.lines {
		if b.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// ─── Cliente y país ───────────────────────────────────────────────────────────

// SelectClient fija el cliente y deriva el país de su registro.
func (b *Builder) SelectClient(ctx context.Context, c entity.Client) error {
	b.mu.Lock()
	client := c
	b.client = &client
	if c.CountryID != 0 {
		b.country = &entity.Country{ID: c.CountryID, Name: c.CountryName}
	}
	b.mu.Unlock()

	return b.recalculate(ctx)
}

// SelectCountry fija el país independientemente del cliente.
func (b *Builder) SelectCountry(ctx context.Context, c entity.Country) error {
	b.mu.Lock()
	country := c
	b.country = &country
	b.mu.Unlock()

	return b.recalculate(ctx)
}

// ─── Totales ──────────────────────────────────────────────────────────────────

// recalculate recalcula los totales. Descuento del servidor solo si hay
// cliente, país y líneas; si no, 0. Impuesto = suma de tasas del país.
func (b *Builder) recalculate(ctx context.Context) error {
	b.mu.Lock()
	b.revision++
	rev := b.revision
	draft := b.snapshotLocked()
	subtotal := decimal.Zero
	for _, l := range draft.Lines {
		subtotal = subtotal.Add(l.Subtotal)
	}
	b.mu.Unlock()

	var errs []error
	discount := decimal.Zero
	if draft.Ready() {
		quote, err := b.orders.CalculateDiscount(ctx, draft.Request())
		if err != nil {
			errs = append(errs, fmt.Errorf("calcular descuento: %w", err))
		} else {
			discount = quote.Discount
		}
	}

	taxPercent := decimal.Zero
	if draft.Country != nil {
		pct, err := b.taxPercent(ctx, draft.Country.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("impuestos del país %d: %w", draft.Country.ID, err))
		} else {
			taxPercent = pct
		}
	}

	totalsErr := errors.Join(errs...)

	b.mu.Lock()
	defer b.mu.Unlock()
	if rev != b.revision {
		return totalsErr
	}
	b.totals = computeTotals(subtotal, discount, taxPercent)
	b.totalsErr = totalsErr
	if totalsErr != nil {
		b.log.Warn().Err(totalsErr).Msg("totales calculados de forma parcial")
	}
	return totalsErr
}

// taxPercent suma de tasas del país, en caché por país.
func (b *Builder) taxPercent(ctx context.Context, countryID int64) (decimal.Decimal, error) {
	b.mu.Lock()
	pct, ok := b.taxCache[countryID]
	b.mu.Unlock()
	if ok {
		return pct, nil
	}

	rates, err := b.countries.TaxRates(ctx, countryID)
	if err != nil {
		return decimal.Zero, err
	}
	pct = entity.TotalPercentage(rates)

	b.mu.Lock()
	b.taxCache[countryID] = pct
	b.mu.Unlock()
	return pct, nil
}

// ─── Envío ────────────────────────────────────────────────────────────────────

// Submit registra el pedido. Sin cliente, sin país o sin líneas se rechaza
// localmente. Si la API acepta, el borrador completo se reinicia; si falla se
// conserva para reintentar.
func (b *Builder) Submit(ctx context.Context) (*entity.Order, error) {
	draft := b.Snapshot()
	switch {
	case draft.Client == nil:
		return nil, domain.ErrMissingClient
	case draft.Country == nil:
		return nil, domain.ErrMissingCountry
	case len(draft.Lines) == 0:
		return nil, domain.ErrEmptyOrder
	}

	order, err := b.orders.Create(ctx, draft.Request())
	if err != nil {
		return nil, fmt.Errorf("registrar pedido: %w", err)
	}
	b.log.Info().Int64("pedido_id", order.ID).Int("lineas", len(draft.Lines)).Msg("pedido registrado")
	b.Reset()
	return order, nil
}

// Reset vacía el borrador (cliente, país, líneas y totales).
func (b *Builder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revision++
	b.client = nil
	b.country = nil
	b.lines = nil
	b.totals = computeTotals(decimal.Zero, decimal.Zero, decimal.Zero)
	b.totalsErr = nil
}

// Snapshot copia del borrador.
func (b *Builder) Snapshot() Draft {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Builder) snapshotLocked() Draft {
	d := Draft{
		Lines:     append([]Line(nil), b.lines...),
		Totals:    b.totals,
		TotalsErr: b.totalsErr,
	}
	if b.client != nil {
		c := *b.client
		d.Client = &c
	}
	if b.country != nil {
		c := *b.country
		d.Country = &c
	}
	return d
}
