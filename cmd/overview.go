package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/alinalihassan/guilders"
	"github.com/alinalihassan/guilders/renderer"
	"github.com/google/subcommands"
)

// overviewCmd holds the flags for the 'overview' subcommand.
type overviewCmd struct {
	currency string
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display accounts grouped by category" }
func (*overviewCmd) Usage() string {
	return `guilders overview [-c <currency>]

  Displays every account category with its converted total, split into
  assets and liabilities, plus the resulting net worth.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", defaultCurrency(), "Display currency for all amounts.")
}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := guilders.NewOverview(accounts, rates, c.currency)
	printMarkdown(renderer.OverviewMarkdown(report))
	return subcommands.ExitSuccess
}
