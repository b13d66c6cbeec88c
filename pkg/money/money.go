// Package money formatea importes para las vistas de la consola.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale Perú: los importes de la API vienen en soles.
var DefaultLocale = language.MustParse("es-PE")

// Formatter formatea importes con símbolo de moneda y separadores del locale.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter construye el formateador.
func NewFormatter(locale language.Tag, symbol string) *Formatter {
	return &Formatter{printer: message.NewPrinter(locale), symbol: symbol}
}

// Format devuelve "S/ 2,600.00" (separadores según locale).
func (f *Formatter) Format(d decimal.Decimal) string {
	amount := f.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
	if f.symbol == "" {
		return amount
	}
	return f.symbol + " " + amount
}

// Percent devuelve "18.00%" (separadores según locale).
func (f *Formatter) Percent(d decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2))) + "%"
}

// Round2 redondea a dos decimales (half-up), la precisión de todos los importes.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
