package calculator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// RoundToTwo rounds amount to two decimal places, half away from zero.
// Only use it for display; calculations keep full precision.
// NaN and ±Inf are returned unchanged.
func RoundToTwo(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return amount
	}
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// CurrencyFormatter renders amounts in a single currency for one locale.
// It holds no mutable state and is safe for concurrent use.
type CurrencyFormatter struct {
	unit   currency.Unit
	tag    language.Tag
	symbol string
}

// NewCurrencyFormatter creates a formatter for an ISO 4217 currency code
// (e.g. "USD") and a BCP 47 locale (e.g. "en-US").
func NewCurrencyFormatter(code, locale string) (*CurrencyFormatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	symbol := message.NewPrinter(tag).Sprint(currency.NarrowSymbol(unit))
	return &CurrencyFormatter{unit: unit, tag: tag, symbol: symbol}, nil
}

// Currency returns the ISO code of the formatter's currency.
func (f *CurrencyFormatter) Currency() string {
	return f.unit.String()
}

// Format renders amount rounded to two decimals, e.g. "$1,234.50" or
// "-$3.10". Amounts that round to zero never carry a minus sign. Overflowed
// amounts render as "$∞" or "-$∞", and NaN as "NaN".
func (f *CurrencyFormatter) Format(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return "NaN"
	case math.IsInf(amount, 1):
		return f.symbol + "∞"
	case math.IsInf(amount, -1):
		return "-" + f.symbol + "∞"
	}
	rounded := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if rounded.Sign() < 0 {
		sign = "-"
	}
	digits := message.NewPrinter(f.tag).Sprint(number.Decimal(rounded.Abs().InexactFloat64(), number.Scale(2)))
	return sign + f.symbol + digits
}
