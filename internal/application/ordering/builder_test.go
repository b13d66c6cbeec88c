package ordering_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/ordering"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository/repositorytest"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
)

var (
	laptop = entity.Product{ID: 1, Name: "Laptop", UnitPrice: decimal.NewFromInt(2500), Stock: 5, Status: entity.StatusActive}
	mouse  = entity.Product{ID: 2, Name: "Mouse", UnitPrice: decimal.NewFromInt(50), Stock: 10, Status: entity.StatusActive}
	peru   = entity.Country{ID: 1, Code: "PE", Name: "Perú"}
	acme   = entity.Client{ID: 7, TaxID: "20123456789", Name: "ACME", CountryID: 1, CountryName: "Perú", Status: entity.StatusActive}
)

type fixture struct {
	orders    *repositorytest.OrderRepository
	countries *repositorytest.CountryRepository
	builder   *ordering.Builder
}

func newFixture() fixture {
	orders := new(repositorytest.OrderRepository)
	countries := new(repositorytest.CountryRepository)
	return fixture{orders: orders, countries: countries, builder: ordering.NewBuilder(orders, countries, logger.Nop())}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAddLine_SubtotalEsPrecioPorCantidad(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	require.NoError(t, f.builder.AddLine(ctx, mouse, 2))
	require.NoError(t, f.builder.AddLine(ctx, mouse, 3))

	d := f.builder.Snapshot()
	require.Len(t, d.Lines, 1)
	assert.Equal(t, 5, d.Lines[0].Quantity)
	assert.True(t, dec("250").Equal(d.Lines[0].Subtotal))
	assert.True(t, dec("250").Equal(d.Totals.Subtotal))
}

func TestAddLine_SuperaStockDejaBorradorIntacto(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.builder.AddLine(ctx, laptop, 4))
	before := f.builder.Snapshot()

	err := f.builder.AddLine(ctx, laptop, 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, before, f.builder.Snapshot())
}

func TestAddLine_StockDosCantidadTresEnBorradorVacio(t *testing.T) {
	f := newFixture()
	p := entity.Product{ID: 9, Name: "Monitor", UnitPrice: decimal.NewFromInt(800), Stock: 2, Status: entity.StatusActive}

	err := f.builder.AddLine(context.Background(), p, 3)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.builder.Snapshot().IsEmpty())
	f.orders.AssertNotCalled(t, "CalculateDiscount", mock.Anything, mock.Anything)
	f.countries.AssertNotCalled(t, "TaxRates", mock.Anything, mock.Anything)
}

func TestAddLine_CantidadInvalidaOProductoNoActivo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	assert.ErrorIs(t, f.builder.AddLine(ctx, mouse, 0), domain.ErrInvalidInput)
	disabled := mouse
	disabled.Status = entity.StatusDisabled
	assert.ErrorIs(t, f.builder.AddLine(ctx, disabled, 1), domain.ErrInvalidInput)
	assert.True(t, f.builder.Snapshot().IsEmpty())
}

func TestRemoveYReAgregarReproduceSubtotal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.builder.AddLine(ctx, laptop, 2))
	want := f.builder.Snapshot().Lines[0].Subtotal

	require.NoError(t, f.builder.RemoveLine(ctx, laptop.ID))
	assert.True(t, f.builder.Snapshot().IsEmpty())
	require.NoError(t, f.builder.AddLine(ctx, laptop, 2))

	assert.True(t, want.Equal(f.builder.Snapshot().Lines[0].Subtotal))
}

func TestSetQuantity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.builder.AddLine(ctx, mouse, 1))

	require.NoError(t, f.builder.SetQuantity(ctx, mouse.ID, 20))
	d := f.builder.Snapshot()
	assert.Equal(t, 20, d.Lines[0].Quantity, "no se vuelve a validar el stock")
	assert.True(t, dec("1000").Equal(d.Lines[0].Subtotal))

	assert.ErrorIs(t, f.builder.SetQuantity(ctx, mouse.ID, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.builder.SetQuantity(ctx, 999, 1), domain.ErrNotFound)
}

func TestTotales_EscenarioIGV18SinDescuento(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.countries.On("TaxRates", mock.Anything, int64(1)).
		Return([]entity.TaxRate{{ID: 1, CountryID: 1, Name: "IGV", Percentage: decimal.NewFromInt(18)}}, nil).Once()

	require.NoError(t, f.builder.SelectCountry(ctx, peru))
	require.NoError(t, f.builder.AddLine(ctx, laptop, 1))
	require.NoError(t, f.builder.AddLine(ctx, mouse, 2))

	tot := f.builder.Snapshot().Totals
	assert.Equal(t, "2600.00", tot.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", tot.Discount.StringFixed(2))
	assert.Equal(t, "468.00", tot.Tax.StringFixed(2))
	assert.Equal(t, "3068.00", tot.Total.StringFixed(2))
	f.countries.AssertExpectations(t)
	f.orders.AssertNotCalled(t, "CalculateDiscount", mock.Anything, mock.Anything)
}

func TestTotales_DescuentoDelServidorConBorradorCompleto(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.countries.On("TaxRates", mock.Anything, int64(1)).
		Return([]entity.TaxRate{{Percentage: decimal.NewFromInt(18)}}, nil)
	f.orders.On("CalculateDiscount", mock.Anything, entity.OrderRequest{
		ClientID: 7, CountryID: 1, Items: []entity.OrderItem{{ProductID: 1, Quantity: 1}},
	}).Return(entity.DiscountQuote{Subtotal: dec("2500"), Discount: dec("250"), Total: dec("2250")}, nil).Once()

	require.NoError(t, f.builder.SelectClient(ctx, acme))
	require.NoError(t, f.builder.AddLine(ctx, laptop, 1))

	d := f.builder.Snapshot()
	require.NotNil(t, d.Country)
	assert.Equal(t, int64(1), d.Country.ID, "el país se deriva del cliente")
	assert.Equal(t, "250.00", d.Totals.Discount.StringFixed(2))
	assert.Equal(t, "2250.00", d.Totals.Net.StringFixed(2))
	assert.Equal(t, "405.00", d.Totals.Tax.StringFixed(2))
	assert.Equal(t, "2655.00", d.Totals.Total.StringFixed(2))
	f.orders.AssertExpectations(t)
}

func TestTotales_FalloDeDescuentoDejaDescuentoCero(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.countries.On("TaxRates", mock.Anything, int64(1)).Return([]entity.TaxRate{}, nil)
	f.orders.On("CalculateDiscount", mock.Anything, mock.Anything).Return(entity.DiscountQuote{}, errors.New("caída"))

	require.NoError(t, f.builder.SelectClient(ctx, acme))
	err := f.builder.AddLine(ctx, mouse, 1)
	require.Error(t, err)

	d := f.builder.Snapshot()
	assert.Len(t, d.Lines, 1, "la línea se conserva")
	assert.True(t, d.Totals.Discount.IsZero())
	assert.Error(t, d.TotalsErr)
}

func TestSelectCountry_SobrescribePaisDelCliente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.countries.On("TaxRates", mock.Anything, mock.Anything).Return([]entity.TaxRate{}, nil)

	require.NoError(t, f.builder.SelectClient(ctx, acme))
	require.NoError(t, f.builder.SelectCountry(ctx, entity.Country{ID: 2, Name: "Chile"}))

	d := f.builder.Snapshot()
	assert.Equal(t, int64(7), d.Client.ID)
	assert.Equal(t, int64(2), d.Country.ID)
}

func TestSubmit_RechazosLocalesSinLlamada(t *testing.T) {
	ctx := context.Background()

	f := newFixture()
	_, err := f.builder.Submit(ctx)
	assert.ErrorIs(t, err, domain.ErrMissingClient)

	f.countries.On("TaxRates", mock.Anything, mock.Anything).Return([]entity.TaxRate{}, nil)
	noCountry := acme
	noCountry.CountryID = 0
	require.NoError(t, f.builder.SelectClient(ctx, noCountry))
	_, err = f.builder.Submit(ctx)
	assert.ErrorIs(t, err, domain.ErrMissingCountry)

	require.NoError(t, f.builder.SelectCountry(ctx, peru))
	_, err = f.builder.Submit(ctx)
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)

	f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_ExitoReiniciaBorrador(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.countries.On("TaxRates", mock.Anything, mock.Anything).Return([]entity.TaxRate{}, nil)
	f.orders.On("CalculateDiscount", mock.Anything, mock.Anything).Return(entity.DiscountQuote{}, nil)
	f.orders.On("Create", mock.Anything, entity.OrderRequest{
		ClientID: 7, CountryID: 1, Items: []entity.OrderItem{{ProductID: 2, Quantity: 3}},
	}).Return(&entity.Order{ID: 55}, nil).Once()

	require.NoError(t, f.builder.SelectClient(ctx, acme))
	require.NoError(t, f.builder.AddLine(ctx, mouse, 3))

	order, err := f.builder.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(55), order.ID)

	d := f.builder.Snapshot()
	assert.Nil(t, d.Client)
	assert.Nil(t, d.Country)
	assert.True(t, d.IsEmpty())
	assert.True(t, d.Totals.Total.IsZero())
}

func TestSubmit_FalloConservaBorrador(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.countries.On("TaxRates", mock.Anything, mock.Anything).Return([]entity.TaxRate{}, nil)
	f.orders.On("CalculateDiscount", mock.Anything, mock.Anything).Return(entity.DiscountQuote{}, nil)
	f.orders.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("500")).Once()

	require.NoError(t, f.builder.SelectClient(ctx, acme))
	require.NoError(t, f.builder.AddLine(ctx, mouse, 1))

	_, err := f.builder.Submit(ctx)
	require.Error(t, err)
	assert.Len(t, f.builder.Snapshot().Lines, 1)
}

func TestImpuestosEnCachePorPais(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.countries.On("TaxRates", mock.Anything, int64(1)).
		Return([]entity.TaxRate{{Percentage: decimal.NewFromInt(16)}, {Percentage: decimal.NewFromInt(2)}}, nil).Once()

	require.NoError(t, f.builder.SelectCountry(ctx, peru))
	require.NoError(t, f.builder.AddLine(ctx, mouse, 1))
	require.NoError(t, f.builder.AddLine(ctx, mouse, 1))

	assert.Equal(t, "18", f.builder.Snapshot().Totals.TaxPercent.String())
	f.countries.AssertNumberOfCalls(t, "TaxRates", 1)
}
