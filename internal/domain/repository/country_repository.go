package repository

import (
	"context"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
)

// CountryRepository puerto de Países e Impuestos.
type CountryRepository interface {
	List(ctx context.Context) ([]entity.Country, error)
	TaxRates(ctx context.Context, countryID int64) ([]entity.TaxRate, error)
}
