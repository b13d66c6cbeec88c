package entity

import "github.com/shopspring/decimal"

// Country país con sus impuestos.
type Country struct {
	ID   int64
	Code string
	Name string
}

// TaxRate impuesto aplicable a un país (uno a muchos).
type TaxRate struct {
	ID         int64
	CountryID  int64
	Name       string
	Percentage decimal.Decimal // 18 = 18%
}

// TotalPercentage suma los porcentajes de los impuestos del país.
func TotalPercentage(rates []TaxRate) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rates {
		total = total.Add(r.Percentage)
	}
	return total
}
