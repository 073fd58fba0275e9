package guilders

import (
	"math"

	"github.com/alinalihassan/guilders/date"
)

// BalancePoint is one day of a merged balance series, in the user currency.
type BalancePoint struct {
	Date  date.Date `json:"date"`
	Value float64   `json:"value"`
}

// ChangeSummary is the first-to-last movement of a series. Percentage is a
// ratio (0.2 for +20%), guarded to 0 when the starting value is 0.
type ChangeSummary struct {
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Currency   string  `json:"currency"`
}

// MergeSeries combines per-account snapshot histories into a single
// date-keyed series in the user currency. Same-date snapshots from
// different accounts are summed; output is sorted ascending by date.
//
// Callers must hand over every account's history at once: merging a
// partial set silently under-counts the series.
func MergeSeries(series []AccountSeries, rates *RateTable, userCurrency string) []BalancePoint {
	var merged date.History[float64]
	for _, s := range series {
		for _, snap := range s.Snapshots {
			merged.Add(snap.Date, Convert(snap.Balance.Float(), s.Currency, rates, userCurrency))
		}
	}
	points := make([]BalancePoint, 0, merged.Len())
	for day, value := range merged.Values() {
		points = append(points, BalancePoint{Date: day, Value: value})
	}
	return points
}

// EndAtToday appends a synthetic point so the series always ends at the
// present balance. Without it a stale history would skew the change
// computation below. A series already ending today is left untouched.
func EndAtToday(points []BalancePoint, currentValue float64) []BalancePoint {
	today := date.Today()
	if n := len(points); n > 0 && points[n-1].Date == today {
		return points
	}
	return append(points, BalancePoint{Date: today, Value: currentValue})
}

// ChangeOf derives the change summary of a series: last minus first, and
// that delta as a fraction of the absolute starting value. Series with
// fewer than two points have no measurable change; callers without history
// fall back to ChangeFromCost.
func ChangeOf(points []BalancePoint, currency string) ChangeSummary {
	if len(points) < 2 {
		return ChangeSummary{Currency: currency}
	}
	first, last := points[0].Value, points[len(points)-1].Value
	return changeSummary(last-first, first, currency)
}

// ChangeFromCost is the cost-basis fallback used when no balance history
// exists: change is current value minus cost, relative to the cost.
func ChangeFromCost(current, cost float64, currency string) ChangeSummary {
	return changeSummary(current-cost, cost, currency)
}

// changeSummary keeps the division-by-zero guard in one place so both
// change computations stay consistent.
func changeSummary(delta, base float64, currency string) ChangeSummary {
	var pct float64
	if base != 0 {
		pct = delta / math.Abs(base)
	}
	return ChangeSummary{Value: delta, Percentage: Finite(pct), Currency: currency}
}
