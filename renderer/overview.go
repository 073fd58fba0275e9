package renderer

import (
	"github.com/alinalihassan/guilders"
)

// Overview is the renderable form of an OverviewReport: every figure is
// already a Money in the display currency.
type Overview struct {
	Currency    string             `json:"currency"`
	NetWorth    guilders.Money     `json:"netWorth"`
	PositiveSum guilders.Money     `json:"positiveSum"`
	NegativeSum guilders.Money     `json:"negativeSum"`
	Assets      []CategoryRow      `json:"assets"`
	Liabilities []CategoryRow      `json:"liabilities"`
}

// CategoryRow is a single category line of the overview.
type CategoryRow struct {
	Name  string         `json:"name"`
	Value guilders.Money `json:"value"`
}

// NewOverview wraps an engine report for rendering. Liability values are
// shown as magnitudes; the section split already carries the sign.
func NewOverview(r *guilders.OverviewReport) *Overview {
	o := &Overview{
		Currency:    r.Currency,
		NetWorth:    guilders.M(r.NetWorth, r.Currency),
		PositiveSum: guilders.M(r.Sums.PositiveSum, r.Currency),
		NegativeSum: guilders.M(r.Sums.NegativeSum, r.Currency),
		Assets:      []CategoryRow{},
		Liabilities: []CategoryRow{},
	}
	for _, b := range r.Grouping.Positive {
		o.Assets = append(o.Assets, CategoryRow{Name: string(b.Name), Value: guilders.M(b.Value, r.Currency)})
	}
	for _, b := range r.Grouping.Negative {
		o.Liabilities = append(o.Liabilities, CategoryRow{Name: string(b.Name), Value: guilders.M(-b.Value, r.Currency)})
	}
	return o
}

// OverviewMarkdown renders the overview report to markdown.
func OverviewMarkdown(r *guilders.OverviewReport) string {
	partials := map[string]string{
		"category_table": "category_table.md",
	}
	return renderTemplate("overview", "overview.md", partials, NewOverview(r))
}
