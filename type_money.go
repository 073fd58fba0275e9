package guilders

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display-side monetary value: an exact decimal amount plus a
// currency code, formatted per ISO-4217 rules. Engine arithmetic stays in
// float64; Money exists so reports print "$1,234.56" instead of raw floats.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from a float amount and a currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(Finite(value)), cur: currency}
}

// currency returns the full currency definition, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.value.IsNegative() }

// Abs returns the money with a non-negative amount.
func (m Money) Abs() Money { return Money{value: m.value.Abs(), cur: m.cur} }

// Add returns the sum of two amounts in the same currency.
func (m Money) Add(n Money) Money {
	return Money{value: m.value.Add(n.value), cur: m.cur}
}

// Float returns the amount as an inexact float64.
func (m Money) Float() float64 { return m.value.InexactFloat64() }

// String formats the amount with the currency's symbol, separators and
// fraction digits.
func (m Money) String() string {
	cur := m.currency()
	units := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(units.Round(0).IntPart())
}

// SignedString is String with an explicit leading sign; zero prints as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
