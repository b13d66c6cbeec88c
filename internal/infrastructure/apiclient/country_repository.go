package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
)

// CountryRepository implementa repository.CountryRepository sobre /api/Paises
// e /api/Impuestos.
type CountryRepository struct {
	c *Client
}

var _ repository.CountryRepository = (*CountryRepository)(nil)

// NewCountryRepository construye el repositorio.
func NewCountryRepository(c *Client) *CountryRepository {
	return &CountryRepository{c: c}
}

func (r *CountryRepository) List(ctx context.Context) ([]entity.Country, error) {
	raw, err := r.c.do(ctx, http.MethodGet, "/Paises", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList(raw, paisWire.toEntity)
}

func (r *CountryRepository) TaxRates(ctx context.Context, countryID int64) ([]entity.TaxRate, error) {
	raw, err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/Impuestos/pais/%d", countryID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList(raw, impuestoWire.toEntity)
}
