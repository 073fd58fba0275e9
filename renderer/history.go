package renderer

import (
	"github.com/alinalihassan/guilders"
)

// History is the renderable form of a HistoryReport.
type History struct {
	Currency string         `json:"currency"`
	Change   guilders.Money `json:"change"`
	Ratio    float64        `json:"ratio"`
	Entries  []HistoryRow   `json:"entries"`
}

// HistoryRow is a single day of the net-worth series.
type HistoryRow struct {
	Date  string         `json:"date"`
	Value guilders.Money `json:"value"`
}

// NewHistory wraps an engine report for rendering.
func NewHistory(r *guilders.HistoryReport) *History {
	h := &History{
		Currency: r.Currency,
		Change:   guilders.M(r.Change.Value, r.Currency),
		Ratio:    r.Change.Percentage,
		Entries:  []HistoryRow{},
	}
	for _, p := range r.Points {
		h.Entries = append(h.Entries, HistoryRow{Date: p.Date.String(), Value: guilders.M(p.Value, r.Currency)})
	}
	return h
}

// HistoryMarkdown renders the net-worth history report to markdown.
func HistoryMarkdown(r *guilders.HistoryReport) string {
	return renderTemplate("history", "history.md", nil, NewHistory(r))
}
