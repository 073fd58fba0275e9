package guilders

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// ValidateCurrency checks a code against the ISO-4217 table. The engine
// itself never validates currencies (unknown codes convert as base units);
// this is for boundary callers that want to reject typos early.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}
