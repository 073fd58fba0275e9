package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/alinalihassan/guilders"
	"github.com/google/subcommands"
)

// convertCmd holds the flags for the 'convert' subcommand.
type convertCmd struct{}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `guilders convert <amount> <from> <to>

  Converts an amount between two currencies using the local rate table.
  Currency codes are validated here; the rate table itself is permissive.

Usage Examples:
$ guilders convert 100 EUR USD
`
}

func (*convertCmd) SetFlags(f *flag.FlagSet) {}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <amount> <from> <to>")
		return subcommands.ExitUsageError
	}
	amount, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	from, to := f.Arg(1), f.Arg(2)
	for _, code := range []string{from, to} {
		if err := guilders.ValidateCurrency(code); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	rates, err := LoadRates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
		return subcommands.ExitFailure
	}

	converted := guilders.Convert(amount, from, rates, to)
	fmt.Printf("%s = %s\n", guilders.M(amount, from), guilders.M(converted, to))
	return subcommands.ExitSuccess
}
