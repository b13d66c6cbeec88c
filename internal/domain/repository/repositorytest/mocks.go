// Package repositorytest dobles de testify/mock para los puertos de repository.
package repositorytest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
)

var (
	_ repository.AuthRepository    = (*AuthRepository)(nil)
	_ repository.ProductRepository = (*ProductRepository)(nil)
	_ repository.ClientRepository  = (*ClientRepository)(nil)
	_ repository.CountryRepository = (*CountryRepository)(nil)
	_ repository.OrderRepository   = (*OrderRepository)(nil)
	_ repository.InvoiceRepository = (*InvoiceRepository)(nil)
)

// ─── Auth ─────────────────────────────────────────────────────────────────────

type AuthRepository struct{ mock.Mock }

func (m *AuthRepository) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *AuthRepository) Register(ctx context.Context, email, password string) error {
	return m.Called(ctx, email, password).Error(0)
}

// ─── Productos ────────────────────────────────────────────────────────────────

type ProductRepository struct{ mock.Mock }

func (m *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *ProductRepository) ListPaged(ctx context.Context, q repository.PageQuery) (repository.Page[entity.Product], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(repository.Page[entity.Product]), args.Error(1)
}

func (m *ProductRepository) Create(ctx context.Context, in entity.ProductInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *ProductRepository) Update(ctx context.Context, id int64, in entity.ProductInput) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductRepository) Enable(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductRepository) Disable(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// ─── Clientes ─────────────────────────────────────────────────────────────────

type ClientRepository struct{ mock.Mock }

func (m *ClientRepository) List(ctx context.Context) ([]entity.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Client), args.Error(1)
}

func (m *ClientRepository) ListPaged(ctx context.Context, q repository.PageQuery) (repository.Page[entity.Client], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(repository.Page[entity.Client]), args.Error(1)
}

func (m *ClientRepository) Create(ctx context.Context, in entity.ClientInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *ClientRepository) Update(ctx context.Context, id int64, in entity.ClientInput) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *ClientRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ClientRepository) Enable(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ClientRepository) Disable(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// ─── Países ───────────────────────────────────────────────────────────────────

type CountryRepository struct{ mock.Mock }

func (m *CountryRepository) List(ctx context.Context) ([]entity.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Country), args.Error(1)
}

func (m *CountryRepository) TaxRates(ctx context.Context, countryID int64) ([]entity.TaxRate, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TaxRate), args.Error(1)
}

// ─── Pedidos ──────────────────────────────────────────────────────────────────

type OrderRepository struct{ mock.Mock }

func (m *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *OrderRepository) ListPaged(ctx context.Context, q repository.PageQuery) (repository.Page[entity.Order], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(repository.Page[entity.Order]), args.Error(1)
}

func (m *OrderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *OrderRepository) Create(ctx context.Context, req entity.OrderRequest) (*entity.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *OrderRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *OrderRepository) CalculateDiscount(ctx context.Context, req entity.OrderRequest) (entity.DiscountQuote, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(entity.DiscountQuote), args.Error(1)
}

// ─── Facturas ─────────────────────────────────────────────────────────────────

type InvoiceRepository struct{ mock.Mock }

func (m *InvoiceRepository) List(ctx context.Context) ([]entity.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Invoice), args.Error(1)
}

func (m *InvoiceRepository) GetByOrder(ctx context.Context, orderID int64) (*entity.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *InvoiceRepository) Issue(ctx context.Context, orderID int64) (*entity.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}
