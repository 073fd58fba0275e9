package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

func runFmt(t *testing.T) {
	t.Helper()
	cmd := &fmtCmd{}
	f := flag.NewFlagSet("fmt", flag.ContinueOnError)
	cmd.SetFlags(f)
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("fmt exited %v, want success", status)
	}
}

func TestFmtSortsRates(t *testing.T) {
	dir := useDataDir(t)
	content := `{"currency_code":"USD","rate":1}
{"currency_code":"EUR","rate":0.9}
`
	file := filepath.Join(dir, "rates.jsonl")
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	runFmt(t)

	got, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"currency_code":"EUR","rate":0.9}
{"currency_code":"USD","rate":1}
`
	if string(got) != want {
		t.Errorf("rates file after fmt =\n%s\nwant\n%s", got, want)
	}
}

func TestFmtSortsAccounts(t *testing.T) {
	dir := useDataDir(t)
	content := `{"id":"b","value":2,"currency":"USD","subtype":"loan"}
{"id":"a","value":1,"currency":"USD","subtype":"depository"}
`
	file := filepath.Join(dir, "accounts.jsonl")
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	runFmt(t)

	accounts, err := LoadAccounts()
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 2 || accounts[0].ID != "a" || accounts[1].ID != "b" {
		t.Errorf("accounts after fmt = %+v, want sorted by ID", accounts)
	}
}

func TestFmtEmptyDir(t *testing.T) {
	useDataDir(t)
	runFmt(t) // no data files is not an error
}
