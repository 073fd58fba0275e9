package renderer

import (
	"github.com/alinalihassan/guilders"
)

// Cashflow is the renderable form of a CashflowReport: one row per link,
// endpoints resolved to their node names.
type Cashflow struct {
	Currency     string         `json:"currency"`
	TotalIncome  guilders.Money `json:"totalIncome"`
	TotalExpense guilders.Money `json:"totalExpense"`
	Flows        []FlowRow      `json:"flows"`
}

// FlowRow is a single resolved link of the flow graph.
type FlowRow struct {
	From   string         `json:"from"`
	To     string         `json:"to"`
	Amount guilders.Money `json:"amount"`
}

// NewCashflow wraps an engine report for rendering.
func NewCashflow(r *guilders.CashflowReport) *Cashflow {
	c := &Cashflow{
		Currency:     r.Currency,
		TotalIncome:  guilders.M(r.TotalIncome, r.Currency),
		TotalExpense: guilders.M(r.TotalExpense, r.Currency),
		Flows:        []FlowRow{},
	}
	for _, link := range r.Graph.Links {
		c.Flows = append(c.Flows, FlowRow{
			From:   r.Graph.Nodes[link.Source].Name,
			To:     r.Graph.Nodes[link.Target].Name,
			Amount: guilders.M(link.Value, r.Currency),
		})
	}
	return c
}

// CashflowMarkdown renders the cash-flow report to markdown.
func CashflowMarkdown(r *guilders.CashflowReport) string {
	return renderTemplate("cashflow", "cashflow.md", nil, NewCashflow(r))
}
