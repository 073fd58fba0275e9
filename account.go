package guilders

import (
	"fmt"
)

// Subtype is the closed categorical tag on an account used for grouping.
type Subtype string

const (
	Depository Subtype = "depository"
	Brokerage  Subtype = "brokerage"
	Crypto     Subtype = "crypto"
	Property   Subtype = "property"
	Vehicle    Subtype = "vehicle"
	CreditCard Subtype = "creditcard"
	Loan       Subtype = "loan"
	Stock      Subtype = "stock"
)

// Subtypes lists every valid subtype in stable display order. Category
// buckets iterate in this order.
var Subtypes = []Subtype{
	Depository, Brokerage, Crypto, Property,
	Vehicle, CreditCard, Loan, Stock,
}

// ErrUnknownSubtype reports an account subtype outside the closed set.
// It is returned at the decoding boundary so the engine itself only ever
// sees valid subtypes.
type ErrUnknownSubtype struct {
	Subtype string
}

func (e *ErrUnknownSubtype) Error() string {
	return fmt.Sprintf("unknown account subtype %q", e.Subtype)
}

// ParseSubtype validates a raw subtype string against the closed set.
func ParseSubtype(s string) (Subtype, error) {
	for _, st := range Subtypes {
		if s == string(st) {
			return st, nil
		}
	}
	return "", &ErrUnknownSubtype{Subtype: s}
}

// Account is a valued entity: a bank account, a position, a property...
// Value holds the current balance in the account's own currency.
type Account struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Value    Amount  `json:"value"`
	Currency string  `json:"currency"`
	Subtype  Subtype `json:"subtype"`
	Parent   string  `json:"parent,omitempty"`
	Cost     Amount  `json:"cost,omitempty"`
}
