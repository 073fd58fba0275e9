package guilders

import "slices"

// Report view models handed to the renderer. They carry the display
// currency alongside the derived figures so rendering needs no extra
// context.

// OverviewReport is the account dashboard: assets and liabilities grouped
// by category, with headline sums.
type OverviewReport struct {
	Currency string
	Grouping CategoryGrouping
	Sums     CategorySums
	NetWorth float64
}

// NewOverview builds the category overview of a set of accounts.
func NewOverview(accounts []Account, rates *RateTable, currency string) *OverviewReport {
	grouping := GroupByCategory(accounts, rates, currency)
	sums := Sums(grouping)
	return &OverviewReport{
		Currency: currency,
		Grouping: grouping,
		Sums:     sums,
		NetWorth: sums.PositiveSum - sums.NegativeSum,
	}
}

// CashflowReport is the income/expense flow of a set of transactions.
type CashflowReport struct {
	Currency     string
	Graph        FlowGraph
	TotalIncome  float64
	TotalExpense float64
}

// NewCashflow builds the cash-flow report of a set of transactions.
// Links flowing into the hub are income, links out of it are expenses.
func NewCashflow(transactions []Transaction, rates *RateTable, currency string) *CashflowReport {
	graph := BuildFlowGraph(transactions, rates, currency)
	hub := slices.IndexFunc(graph.Nodes, func(n FlowNode) bool { return n.Name == FlowHub })
	r := &CashflowReport{Currency: currency, Graph: graph}
	for _, link := range graph.Links {
		if link.Target == hub {
			r.TotalIncome += link.Value
		} else {
			r.TotalExpense += link.Value
		}
	}
	return r
}

// HistoryOptions tunes the net-worth history report.
type HistoryOptions struct {
	// Current, when set, is the present balance: the series is resynced to
	// end today at that value, and it feeds the cost-basis change fallback.
	Current *float64
	// Cost is the cost basis used when the series is too short to measure
	// a first-to-last change.
	Cost float64
}

// HistoryReport is the merged net-worth series with its change summary.
type HistoryReport struct {
	Currency string
	Points   []BalancePoint
	Change   ChangeSummary
}

// NewHistory merges per-account balance histories into one series and
// derives its change. With fewer than two points the change falls back to
// cost basis when a current value is available.
func NewHistory(series []AccountSeries, rates *RateTable, currency string, opts HistoryOptions) *HistoryReport {
	points := MergeSeries(series, rates, currency)
	if opts.Current != nil {
		points = EndAtToday(points, *opts.Current)
	}
	var change ChangeSummary
	switch {
	case len(points) >= 2:
		change = ChangeOf(points, currency)
	case opts.Current != nil:
		change = ChangeFromCost(*opts.Current, opts.Cost, currency)
	default:
		change = ChangeSummary{Currency: currency}
	}
	return &HistoryReport{Currency: currency, Points: points, Change: change}
}
