package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/alinalihassan/guilders"
	"github.com/alinalihassan/guilders/renderer"
	"github.com/google/subcommands"
)

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	currency string
	asJSON   bool
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display the income/expense flow of transactions" }
func (*cashflowCmd) Usage() string {
	return `guilders cashflow [-c <currency>] [-json]

  Builds the income -> expense flow graph of all transactions, per
  category. With -json, prints the raw graph (nodes and links) instead of
  the markdown report, ready for a Sankey chart.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", defaultCurrency(), "Display currency for all amounts.")
	f.BoolVar(&c.asJSON, "json", false, "Print the flow graph as JSON.")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions, err := LoadTransactions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	rates, err := LoadRates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
		return subcommands.ExitFailure
	}

	report := guilders.NewCashflow(transactions, rates, c.currency)

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report.Graph); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding flow graph: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.CashflowMarkdown(report))
	return subcommands.ExitSuccess
}
