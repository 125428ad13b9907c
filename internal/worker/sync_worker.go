package worker

import (
	"context"
	"fmt"
	"log/slog"

	"txboard/internal/amqp"
	"txboard/internal/core"
	"txboard/internal/log"
	"txboard/internal/sheets"
	"txboard/internal/source"
)

// SyncWorker keeps an external spreadsheet in step with the dataset:
// whenever a reload notification arrives it re-reads the snapshot,
// aggregates the full ledger and rewrites the totals sheet.
type SyncWorker struct {
	src    source.Source
	totals sheets.TotalsWriter
}

func NewSyncWorker(src source.Source, totals sheets.TotalsWriter) *SyncWorker {
	return &SyncWorker{
		src:    src,
		totals: totals,
	}
}

// HandleReloadMessage processes one reload notification from AMQP.
func (w *SyncWorker) HandleReloadMessage(ctx context.Context, msg *amqp.DatasetReloadMessage) error {
	slog.InfoContext(ctx, "Processing reload message",
		log.FieldOperation, log.OpReload,
		log.FieldCustomers, msg.Customers,
		log.FieldTransactions, msg.Transactions,
		"loaded_at", msg.LoadedAt)
	return w.SyncTotals(ctx)
}

// SyncTotals loads the current snapshot and exports its full per-customer
// totals (no search terms applied).
func (w *SyncWorker) SyncTotals(ctx context.Context) error {
	ds, err := w.src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dataset for sync: %w", err)
	}

	dir := core.NewDirectory(ds.Customers)
	entries := core.Aggregate(ds.Transactions, dir)

	if err := w.totals.WriteTotals(ctx, entries); err != nil {
		return fmt.Errorf("export totals: %w", err)
	}

	slog.InfoContext(ctx, "Totals synced",
		log.FieldOperation, log.OpExport,
		log.FieldTransactions, len(ds.Transactions),
		log.FieldLabels, len(entries))
	return nil
}

// StartupSync performs one export at boot so the sheet is current even if
// no reload happens during this run.
func (w *SyncWorker) StartupSync(ctx context.Context) error {
	slog.InfoContext(ctx, "Performing startup totals sync")
	return w.SyncTotals(ctx)
}
