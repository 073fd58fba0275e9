package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/alinalihassan/guilders"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	base      string
	ratesURL  string
	ratesPath string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch today's exchange rates into the rate table" }
func (*fetchCmd) Usage() string {
	return `guilders fetch [-base <currency>] [-rates-url <url>] [-rates-path <jsonpath>]

  Fetches today's exchange rates from the provider and writes them to the
  rates file. Responses are cached on disk and expire daily, so repeated
  runs do not hit the provider again.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "base", defaultCurrency(), "Base currency the rates are expressed against.")
	f.StringVar(&c.ratesURL, "rates-url", guilders.DefaultRatesURL, "Rates provider endpoint.")
	f.StringVar(&c.ratesPath, "rates-path", guilders.DefaultRatesPath, "JSONPath of the code-to-rate map in the provider response.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := guilders.ValidateCurrency(c.base); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	rates, err := guilders.FetchRates(c.ratesURL, c.ratesPath, c.base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching rates: %v\n", err)
		return subcommands.ExitFailure
	}

	file, err := os.Create(ratesFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating rates file %q: %v\n", ratesFile(), err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	if err := guilders.EncodeRates(file, rates); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing rates file %q: %v\n", ratesFile(), err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Fetched %d rates (base %s) into %s\n", len(rates), c.base, ratesFile())
	return subcommands.ExitSuccess
}
