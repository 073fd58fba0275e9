package guilders

import (
	"math"
	"slices"
	"testing"

	"github.com/alinalihassan/guilders/date"
)

func TestMergeSeries(t *testing.T) {
	series := []AccountSeries{
		{
			AccountID: "a1",
			Currency:  "USD",
			Snapshots: []BalanceSnapshot{
				{Date: date.MustParse("2024-01-01"), Balance: 100},
				{Date: date.MustParse("2024-01-02"), Balance: 110},
			},
		},
		{
			AccountID: "a2",
			Currency:  "USD",
			Snapshots: []BalanceSnapshot{
				{Date: date.MustParse("2024-01-02"), Balance: 50},
				{Date: date.MustParse("2024-01-03"), Balance: 60},
			},
		},
	}

	got := MergeSeries(series, nil, "USD")

	want := []BalancePoint{
		{Date: date.MustParse("2024-01-01"), Value: 100},
		{Date: date.MustParse("2024-01-02"), Value: 160},
		{Date: date.MustParse("2024-01-03"), Value: 60},
	}
	if !slices.Equal(got, want) {
		t.Errorf("MergeSeries = %+v, want %+v", got, want)
	}
}

func TestMergeSeries_Commutative(t *testing.T) {
	a := AccountSeries{Currency: "USD", Snapshots: []BalanceSnapshot{
		{Date: date.MustParse("2024-03-01"), Balance: 10},
		{Date: date.MustParse("2024-03-05"), Balance: 20},
	}}
	b := AccountSeries{Currency: "USD", Snapshots: []BalanceSnapshot{
		{Date: date.MustParse("2024-03-01"), Balance: 5},
		{Date: date.MustParse("2024-03-03"), Balance: 7},
	}}

	ab := MergeSeries([]AccountSeries{a, b}, nil, "USD")
	ba := MergeSeries([]AccountSeries{b, a}, nil, "USD")
	if !slices.Equal(ab, ba) {
		t.Errorf("merge is order dependent: %+v != %+v", ab, ba)
	}
}

func TestMergeSeries_Converts(t *testing.T) {
	rates := NewRateTable([]Rate{{Code: "EUR", Rate: 0.9}, {Code: "USD", Rate: 1}})
	series := []AccountSeries{{Currency: "EUR", Snapshots: []BalanceSnapshot{
		{Date: date.MustParse("2024-01-01"), Balance: 100},
	}}}
	got := MergeSeries(series, rates, "USD")
	if len(got) != 1 || math.Abs(got[0].Value-90) > 1e-9 {
		t.Errorf("MergeSeries = %+v, want one point of 90", got)
	}
}

func TestChangeOf(t *testing.T) {
	points := []BalancePoint{
		{Date: date.MustParse("2024-01-01"), Value: 100},
		{Date: date.MustParse("2024-02-01"), Value: 120},
	}
	got := ChangeOf(points, "USD")
	if got.Value != 20 {
		t.Errorf("Change value = %v, want 20", got.Value)
	}
	if math.Abs(got.Percentage-0.2) > 1e-9 {
		t.Errorf("Change percentage = %v, want 0.2", got.Percentage)
	}
	if got.Currency != "USD" {
		t.Errorf("Change currency = %q, want USD", got.Currency)
	}
}

func TestChangeOf_NegativeStart(t *testing.T) {
	// Percentage is relative to the absolute starting value.
	points := []BalancePoint{
		{Date: date.MustParse("2024-01-01"), Value: -100},
		{Date: date.MustParse("2024-02-01"), Value: -50},
	}
	got := ChangeOf(points, "USD")
	if got.Value != 50 || math.Abs(got.Percentage-0.5) > 1e-9 {
		t.Errorf("Change = %+v, want {50 0.5}", got)
	}
}

func TestChangeOf_ZeroStart(t *testing.T) {
	points := []BalancePoint{
		{Date: date.MustParse("2024-01-01"), Value: 0},
		{Date: date.MustParse("2024-02-01"), Value: 100},
	}
	got := ChangeOf(points, "USD")
	if got.Value != 100 || got.Percentage != 0 {
		t.Errorf("Change = %+v, want {100 0} (guarded denominator)", got)
	}
}

func TestChangeOf_TooShort(t *testing.T) {
	got := ChangeOf([]BalancePoint{{Date: date.Today(), Value: 5}}, "USD")
	if got.Value != 0 || got.Percentage != 0 {
		t.Errorf("Change of a 1-point series = %+v, want zero", got)
	}
}

func TestChangeFromCost(t *testing.T) {
	got := ChangeFromCost(120, 100, "USD")
	if got.Value != 20 || math.Abs(got.Percentage-0.2) > 1e-9 {
		t.Errorf("ChangeFromCost = %+v, want {20 0.2}", got)
	}
	got = ChangeFromCost(120, 0, "USD")
	if got.Value != 120 || got.Percentage != 0 {
		t.Errorf("ChangeFromCost with zero cost = %+v, want {120 0}", got)
	}
}

func TestEndAtToday(t *testing.T) {
	stale := []BalancePoint{
		{Date: date.MustParse("2024-01-01"), Value: 100},
	}
	got := EndAtToday(stale, 140)
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
	if got[1].Date != date.Today() || got[1].Value != 140 {
		t.Errorf("appended point = %+v, want today at 140", got[1])
	}

	fresh := []BalancePoint{{Date: date.Today(), Value: 100}}
	if got := EndAtToday(fresh, 140); len(got) != 1 {
		t.Errorf("series already ending today grew to %d points", len(got))
	}
}

func TestNewHistory_CostFallback(t *testing.T) {
	// No snapshots at all: EndAtToday adds one point, which is still too
	// short for a series change, so cost basis kicks in.
	current := 120.0
	report := NewHistory(nil, nil, "USD", HistoryOptions{Current: &current, Cost: 100})
	if len(report.Points) != 1 {
		t.Fatalf("got %d points, want the synthetic today point", len(report.Points))
	}
	if report.Change.Value != 20 || math.Abs(report.Change.Percentage-0.2) > 1e-9 {
		t.Errorf("fallback change = %+v, want {20 0.2}", report.Change)
	}
}

func TestNewHistory_SeriesChange(t *testing.T) {
	series := []AccountSeries{{Currency: "USD", Snapshots: []BalanceSnapshot{
		{Date: date.MustParse("2024-01-01"), Balance: 100},
		{Date: date.MustParse("2024-02-01"), Balance: 120},
	}}}
	report := NewHistory(series, nil, "USD", HistoryOptions{})
	if report.Change.Value != 20 || math.Abs(report.Change.Percentage-0.2) > 1e-9 {
		t.Errorf("change = %+v, want {20 0.2}", report.Change)
	}
}
