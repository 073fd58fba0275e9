// Package cmd implements the guilders CLI application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alinalihassan/guilders"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

// Commands lists every subcommand the application registers.
// A main package iterates it to register, and Execute the selected one.
var Commands = []subcommands.Command{
	&overviewCmd{},
	&cashflowCmd{},
	&historyCmd{},
	&convertCmd{},
	&fetchCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.

var dataDir = flag.String("data-dir", ".", "Path to the folder holding the data files (accounts.jsonl, transactions.jsonl, rates.jsonl, balances/)")

const currencyEnv = "GUILDERS_CURRENCY"

// defaultCurrency is the display currency when -c is not given.
func defaultCurrency() string {
	if c := os.Getenv(currencyEnv); c != "" {
		return c
	}
	return "USD"
}

func accountsFile() string     { return filepath.Join(*dataDir, "accounts.jsonl") }
func transactionsFile() string { return filepath.Join(*dataDir, "transactions.jsonl") }
func ratesFile() string        { return filepath.Join(*dataDir, "rates.jsonl") }
func balancesDir() string      { return filepath.Join(*dataDir, "balances") }

// decodeFile opens a data file and decodes it with the given decoder.
func decodeFile[T any](filename string, decode func(string, io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(filename, f)
}

// LoadAccounts reads the accounts file. A missing file is an empty set.
func LoadAccounts() ([]guilders.Account, error) {
	accounts, err := decodeFile(accountsFile(), guilders.DecodeAccounts)
	if errors.Is(err, fs.ErrNotExist) {
		return []guilders.Account{}, nil
	}
	return accounts, err
}

// LoadTransactions reads the transactions file. A missing file is an
// empty set.
func LoadTransactions() ([]guilders.Transaction, error) {
	transactions, err := decodeFile(transactionsFile(), guilders.DecodeTransactions)
	if errors.Is(err, fs.ErrNotExist) {
		return []guilders.Transaction{}, nil
	}
	return transactions, err
}

// LoadRates reads the rate table. A missing file yields a nil table:
// conversion degrades to identity rather than failing the report.
func LoadRates() (*guilders.RateTable, error) {
	rates, err := decodeFile(ratesFile(), guilders.DecodeRates)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: no rates file, amounts are displayed unconverted (run 'guilders fetch')")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return guilders.NewRateTable(rates), nil
}

// LoadSeries reads every account's balance history, one file per account,
// concurrently. The merge only happens after all loads finish: a partial
// set would silently under-count the merged series. An account without a
// history file contributes an empty history.
func LoadSeries(ctx context.Context, accounts []guilders.Account) ([]guilders.AccountSeries, error) {
	series := make([]guilders.AccountSeries, len(accounts))
	g, _ := errgroup.WithContext(ctx)
	for i, account := range accounts {
		g.Go(func() error {
			filename := filepath.Join(balancesDir(), account.ID+".jsonl")
			snapshots, err := decodeFile(filename, guilders.DecodeSnapshots)
			if errors.Is(err, fs.ErrNotExist) {
				snapshots, err = []guilders.BalanceSnapshot{}, nil
			}
			if err != nil {
				return err
			}
			series[i] = guilders.AccountSeries{
				AccountID: account.ID,
				Currency:  account.Currency,
				Snapshots: snapshots,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return series, nil
}

// printMarkdown renders markdown for the terminal. If the fancy renderer
// fails, the raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
