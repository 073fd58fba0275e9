package renderer

import (
	"testing"

	"github.com/alinalihassan/guilders"
	"github.com/alinalihassan/guilders/date"
)

func TestPercent(t *testing.T) {
	testCases := []struct {
		ratio float64
		want  string
	}{
		{0.2, "+20.00%"},
		{-0.055, "-5.50%"},
		{0, "+0.00%"},
	}
	for _, tc := range testCases {
		if got := Percent(tc.ratio); got != tc.want {
			t.Errorf("Percent(%v) = %q, want %q", tc.ratio, got, tc.want)
		}
	}
}

func TestOverviewMarkdown(t *testing.T) {
	accounts := []guilders.Account{
		{ID: "a1", Name: "Checking", Value: 100, Currency: "USD", Subtype: guilders.Depository},
		{ID: "a2", Name: "Visa", Value: -50, Currency: "USD", Subtype: guilders.CreditCard},
	}
	report := guilders.NewOverview(accounts, nil, "USD")

	want := `# Accounts Overview

Net worth: **$50.00** (USD)

## Assets: $100.00

| Category | Value |
|:---------|------:|
| depository | $100.00 |

## Liabilities: $50.00

| Category | Value |
|:---------|------:|
| creditcard | $50.00 |

`
	if got := OverviewMarkdown(report); got != want {
		t.Errorf("OverviewMarkdown =\n%q\nwant\n%q", got, want)
	}
}

func TestCashflowMarkdown(t *testing.T) {
	transactions := []guilders.Transaction{
		{ID: "t1", Amount: 3000, Currency: "USD", Category: "salary"},
		{ID: "t2", Amount: -1000, Currency: "USD", Category: "rent"},
	}
	report := guilders.NewCashflow(transactions, nil, "USD")

	want := `# Cash Flow

Income: **$3,000.00**, Expenses: **$1,000.00** (USD)

| From | To | Amount |
|:-----|:---|-------:|
| salary (Income) | Income | $3,000.00 |
| Income | rent (Expense) | $1,000.00 |

`
	if got := CashflowMarkdown(report); got != want {
		t.Errorf("CashflowMarkdown =\n%q\nwant\n%q", got, want)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	report := &guilders.HistoryReport{
		Currency: "USD",
		Points: []guilders.BalancePoint{
			{Date: date.MustParse("2024-01-01"), Value: 80},
			{Date: date.MustParse("2024-01-02"), Value: 100},
		},
		Change: guilders.ChangeSummary{Value: 20, Percentage: 0.25, Currency: "USD"},
	}

	want := `# Net Worth History

Change: **+$20.00** (+25.00%)

| Date | Value |
|:-----|------:|
| 2024-01-01 | $80.00 |
| 2024-01-02 | $100.00 |

`
	if got := HistoryMarkdown(report); got != want {
		t.Errorf("HistoryMarkdown =\n%q\nwant\n%q", got, want)
	}
}

func TestNewCashflowResolvesEndpoints(t *testing.T) {
	transactions := []guilders.Transaction{
		{ID: "t1", Amount: 500, Currency: "USD"},
	}
	c := NewCashflow(guilders.NewCashflow(transactions, nil, "USD"))
	if len(c.Flows) != 1 {
		t.Fatalf("len(Flows) = %d, want 1", len(c.Flows))
	}
	row := c.Flows[0]
	if row.From != "uncategorized (Income)" || row.To != "Income" {
		t.Errorf("row = %+v, want uncategorized (Income) -> Income", row)
	}
}
