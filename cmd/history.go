package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/alinalihassan/guilders"
	"github.com/alinalihassan/guilders/renderer"
	"github.com/google/subcommands"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	currency string
	current  string
	cost     float64
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the merged net-worth history" }
func (*historyCmd) Usage() string {
	return `guilders history [-c <currency>] [-current <value>] [-cost <value>]

  Merges every account's balance history into a single net-worth series in
  the display currency and derives its change. With -current, the series is
  extended to end today at that balance; -cost supplies the cost basis used
  when there is not enough history to measure a change.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", defaultCurrency(), "Display currency for all amounts.")
	f.StringVar(&c.current, "current", "", "Present total balance, appended as today's point.")
	f.Float64Var(&c.cost, "cost", 0, "Cost basis for the change fallback.")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accounts, err := LoadAccounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	rates, err := LoadRates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
		return subcommands.ExitFailure
	}
	series, err := LoadSeries(ctx, accounts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading balance histories: %v\n", err)
		return subcommands.ExitFailure
	}

	var opts guilders.HistoryOptions
	opts.Cost = c.cost
	if c.current != "" {
		current, err := strconv.ParseFloat(c.current, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -current %q: %v\n", c.current, err)
			return subcommands.ExitUsageError
		}
		opts.Current = &current
	}

	report := guilders.NewHistory(series, rates, c.currency, opts)
	printMarkdown(renderer.HistoryMarkdown(report))
	return subcommands.ExitSuccess
}
