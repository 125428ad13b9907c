// Package export writes dashboard views to CSV files.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"txboard/internal/core"
)

// TransactionRow mirrors the dashboard table: resolved customer label
// first, then the transaction fields.
type TransactionRow struct {
	Customer      string `csv:"Customer"`
	TransactionID string `csv:"TransactionID"`
	Date          string `csv:"Date"`
	Amount        string `csv:"Amount"`
}

// TotalRow is one chart slice.
type TotalRow struct {
	Customer string `csv:"Customer"`
	Total    string `csv:"Total"`
}

// WriteTransactions writes the visible subset, in order, with labels
// resolved through the directory.
func WriteTransactions(path string, visible []core.Transaction, dir *core.Directory) error {
	rows := make([]TransactionRow, 0, len(visible))
	for _, t := range visible {
		rows = append(rows, TransactionRow{
			Customer:      dir.Resolve(t),
			TransactionID: string(t.ID),
			Date:          t.Date,
			Amount:        t.AmountText(),
		})
	}
	if err := writeCSV(path, &rows); err != nil {
		return err
	}
	slog.Info("Transactions exported", "path", path, "rows", len(rows))
	return nil
}

// WriteTotals writes the aggregate entries in first-seen order.
func WriteTotals(path string, entries []core.AggregateEntry) error {
	rows := make([]TotalRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, TotalRow{Customer: e.Label, Total: e.Total.String()})
	}
	if err := writeCSV(path, &rows); err != nil {
		return err
	}
	slog.Info("Totals exported", "path", path, "rows", len(rows))
	return nil
}

func writeCSV(path string, rows interface{}) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("write CSV file %s: %w", path, err)
	}
	return nil
}
