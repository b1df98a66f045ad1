package journal

import (
	"log"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatter renders decimal amounts as display currency. Rounding is a
// display concern only; all computation stays on decimals.
type Formatter struct {
	Currency string
}

// NewFormatter returns a formatter for the given ISO currency code, falling
// back to USD for unknown codes.
func NewFormatter(currency string) Formatter {
	if money.GetCurrency(currency) == nil {
		log.Printf("warning: unknown currency %q, falling back to USD", currency)
		currency = money.USD
	}
	return Formatter{Currency: currency}
}

func (f Formatter) amount(d decimal.Decimal) *money.Money {
	cur := money.GetCurrency(f.Currency)
	factor := decimal.New(1, int32(cur.Fraction))
	return money.New(d.Mul(factor).Round(0).IntPart(), f.Currency)
}

// Money renders the amount in its display form, e.g. "$1,234.50".
func (f Formatter) Money(d decimal.Decimal) string {
	return f.amount(d).Display()
}

// SignedMoney renders the amount with an explicit sign, e.g. "+$120.00".
func (f Formatter) SignedMoney(d decimal.Decimal) string {
	m := f.amount(d)
	if m.IsPositive() {
		return "+" + m.Display()
	}
	return m.Display()
}
