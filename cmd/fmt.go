package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alinalihassan/guilders"
	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the data files in canonical form"
}
func (*fmtCmd) Usage() string {
	return `guilders fmt

  Validates and formats the data files. Accounts are checked against the
  closed subtype set, then every file is rewritten sorted: accounts by ID,
  transactions by date, rates by code, balance histories by date.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

// rewrite re-encodes one data file in place.
func rewrite[T any](filename string, records []T, encode func(*os.File, []T) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return encode(file, records)
}

func (c *fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var formatted []string

	accounts, err := LoadAccounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(accounts) > 0 {
		if err := rewrite(accountsFile(), accounts, func(w *os.File, a []guilders.Account) error {
			return guilders.EncodeAccounts(w, a)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %q: %v\n", accountsFile(), err)
			return subcommands.ExitFailure
		}
		formatted = append(formatted, accountsFile())
	}

	transactions, err := LoadTransactions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(transactions) > 0 {
		if err := rewrite(transactionsFile(), transactions, func(w *os.File, t []guilders.Transaction) error {
			return guilders.EncodeTransactions(w, t)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %q: %v\n", transactionsFile(), err)
			return subcommands.ExitFailure
		}
		formatted = append(formatted, transactionsFile())
	}

	rates, err := decodeFile(ratesFile(), guilders.DecodeRates)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(rates) > 0 {
		if err := rewrite(ratesFile(), rates, func(w *os.File, r []guilders.Rate) error {
			return guilders.EncodeRates(w, r)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %q: %v\n", ratesFile(), err)
			return subcommands.ExitFailure
		}
		formatted = append(formatted, ratesFile())
	}

	series, err := LoadSeries(ctx, accounts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading balance histories: %v\n", err)
		return subcommands.ExitFailure
	}
	histories := 0
	for _, s := range series {
		if len(s.Snapshots) == 0 {
			continue
		}
		filename := filepath.Join(balancesDir(), s.AccountID+".jsonl")
		if err := rewrite(filename, s.Snapshots, func(w *os.File, snaps []guilders.BalanceSnapshot) error {
			return guilders.EncodeSnapshots(w, snaps)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %q: %v\n", filename, err)
			return subcommands.ExitFailure
		}
		histories++
	}

	if len(formatted) == 0 && histories == 0 {
		fmt.Println("Nothing to format")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Formatted %s and %d balance histories\n", strings.Join(formatted, ", "), histories)
	return subcommands.ExitSuccess
}
