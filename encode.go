package guilders

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
)

// This file persists the engine's inputs as JSONL: one record per line,
// human-readable and git-friendly. Decoding is strict (a bad line fails
// with its file and content in the error); the engine downstream is not.

// decodeLines parses a JSONL stream into records, running an optional
// validation on each. filename is for error messages only.
func decodeLines[T any](filename string, r io.Reader, validate func(*T) error) ([]T, error) {
	records := make([]T, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var record T
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", filename, string(line), err)
		}
		if validate != nil {
			if err := validate(&record); err != nil {
				return nil, fmt.Errorf("invalid record in %q on line %q: %w", filename, string(line), err)
			}
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return records, nil
}

// encodeLines writes records as JSONL.
func encodeLines[T any](w io.Writer, records []T) error {
	enc := json.NewEncoder(w)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return err
		}
	}
	return nil
}

// DecodeAccounts parses accounts from JSONL, rejecting records whose
// subtype is outside the closed set.
func DecodeAccounts(filename string, r io.Reader) ([]Account, error) {
	return decodeLines(filename, r, func(a *Account) error {
		_, err := ParseSubtype(string(a.Subtype))
		return err
	})
}

// DecodeTransactions parses transactions from JSONL.
func DecodeTransactions(filename string, r io.Reader) ([]Transaction, error) {
	return decodeLines[Transaction](filename, r, nil)
}

// DecodeRates parses a rate table from JSONL.
func DecodeRates(filename string, r io.Reader) ([]Rate, error) {
	return decodeLines[Rate](filename, r, nil)
}

// DecodeSnapshots parses one account's balance history from JSONL.
func DecodeSnapshots(filename string, r io.Reader) ([]BalanceSnapshot, error) {
	return decodeLines[BalanceSnapshot](filename, r, nil)
}

// EncodeAccounts writes accounts in canonical order (by ID).
func EncodeAccounts(w io.Writer, accounts []Account) error {
	sorted := slices.Clone(accounts)
	slices.SortStableFunc(sorted, func(a, b Account) int {
		return strings.Compare(a.ID, b.ID)
	})
	return encodeLines(w, sorted)
}

// EncodeTransactions writes transactions in canonical order (date, then ID).
func EncodeTransactions(w io.Writer, transactions []Transaction) error {
	sorted := slices.Clone(transactions)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return encodeLines(w, sorted)
}

// EncodeRates writes a rate table in canonical order (by currency code).
func EncodeRates(w io.Writer, rates []Rate) error {
	sorted := slices.Clone(rates)
	slices.SortStableFunc(sorted, func(a, b Rate) int {
		return strings.Compare(a.Code, b.Code)
	})
	return encodeLines(w, sorted)
}

// EncodeSnapshots writes a balance history in chronological order.
func EncodeSnapshots(w io.Writer, snapshots []BalanceSnapshot) error {
	sorted := slices.Clone(snapshots)
	slices.SortStableFunc(sorted, func(a, b BalanceSnapshot) int {
		return a.Date.Compare(b.Date)
	})
	return encodeLines(w, sorted)
}
