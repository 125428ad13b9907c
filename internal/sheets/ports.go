package sheets

import (
	"context"

	"txboard/internal/core"
)

// TotalsWriter publishes the current per-customer totals to an external
// spreadsheet, replacing whatever was there before.
type TotalsWriter interface {
	WriteTotals(ctx context.Context, entries []core.AggregateEntry) error
}
