package guilders

import (
	"github.com/alinalihassan/guilders/date"
)

// Uncategorized is the category assigned to transactions without one.
const Uncategorized = "uncategorized"

// Transaction is a single money movement on an account. Positive amounts
// are income, negative amounts are expenses.
type Transaction struct {
	ID          string    `json:"id"`
	Amount      Amount    `json:"amount"`
	Currency    string    `json:"currency"`
	Category    string    `json:"category,omitempty"`
	Date        date.Date `json:"date"`
	Description string    `json:"description,omitempty"`
}

// category returns the transaction's category, defaulting when missing.
func (t Transaction) category() string {
	if t.Category == "" {
		return Uncategorized
	}
	return t.Category
}
