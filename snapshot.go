package guilders

import (
	"github.com/alinalihassan/guilders/date"
)

// BalanceSnapshot is one day's closing balance of a single account, in the
// account's own currency. Balances arrive as decimal strings.
type BalanceSnapshot struct {
	Date    date.Date `json:"date"`
	Balance Amount    `json:"balance"`
}

// AccountSeries is the full snapshot history of one account. It is the
// unit the series merge consumes: one per account, each possibly in a
// different currency.
type AccountSeries struct {
	AccountID string            `json:"account_id,omitempty"`
	Currency  string            `json:"currency"`
	Snapshots []BalanceSnapshot `json:"snapshots"`
}
