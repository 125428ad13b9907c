package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"txboard/internal/core"
)

// Source loads one complete dataset snapshot. A failed load returns an
// error and no partial data; callers keep (or start with) an empty
// snapshot in that case.
type Source interface {
	Load(ctx context.Context) (core.Dataset, error)
}

// document is the wire shape of a dataset feed: two top-level record
// collections. Some feeds name the transaction collection in the
// singular, so both keys are accepted.
type document struct {
	Customers          []core.Customer    `json:"customers"`
	Transactions       []core.Transaction `json:"transactions"`
	LegacyTransactions []core.Transaction `json:"transaction"`
}

func decodeDocument(r io.Reader) (core.Dataset, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return core.Dataset{}, fmt.Errorf("decode dataset document: %w", err)
	}

	ds := core.Dataset{
		Customers:    doc.Customers,
		Transactions: doc.Transactions,
	}
	if len(ds.Transactions) == 0 {
		ds.Transactions = doc.LegacyTransactions
	}

	if err := ds.Validate(); err != nil {
		return core.Dataset{}, fmt.Errorf("validate dataset: %w", err)
	}
	return ds, nil
}
