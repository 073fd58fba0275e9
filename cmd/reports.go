package cmd

import (
	"context"

	"github.com/alinalihassan/guilders"
	"github.com/alinalihassan/guilders/renderer"
)

// Report closures handed to the assistant: each loads the local data files
// and returns the corresponding markdown report in the given currency.
// The assistant gets the same view of the data as the human commands.

// RenderOverview builds the category overview report as markdown.
func RenderOverview(currency string) (string, error) {
	accounts, err := LoadAccounts()
	if err != nil {
		return "", err
	}
	rates, err := LoadRates()
	if err != nil {
		return "", err
	}
	return renderer.OverviewMarkdown(guilders.NewOverview(accounts, rates, currency)), nil
}

// RenderCashflow builds the cash-flow report as markdown.
func RenderCashflow(currency string) (string, error) {
	transactions, err := LoadTransactions()
	if err != nil {
		return "", err
	}
	rates, err := LoadRates()
	if err != nil {
		return "", err
	}
	return renderer.CashflowMarkdown(guilders.NewCashflow(transactions, rates, currency)), nil
}

// RenderHistory builds the net-worth history report as markdown.
func RenderHistory(currency string) (string, error) {
	accounts, err := LoadAccounts()
	if err != nil {
		return "", err
	}
	rates, err := LoadRates()
	if err != nil {
		return "", err
	}
	series, err := LoadSeries(context.Background(), accounts)
	if err != nil {
		return "", err
	}
	report := guilders.NewHistory(series, rates, currency, guilders.HistoryOptions{})
	return renderer.HistoryMarkdown(report), nil
}
