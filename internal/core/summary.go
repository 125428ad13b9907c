package core

import "github.com/shopspring/decimal"

// AggregateEntry is one chart slice: a resolved customer label and the
// summed amount of the visible transactions carrying it.
type AggregateEntry struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// Aggregate reduces the visible subset into per-label totals in a single
// ordered scan. Entries are emitted in the order their labels were first
// encountered, not alphabetically. An empty subset yields an empty
// sequence.
func Aggregate(visible []Transaction, dir *Directory) []AggregateEntry {
	index := make(map[string]int, len(visible))
	entries := make([]AggregateEntry, 0, len(visible))
	for _, t := range visible {
		label := dir.Resolve(t)
		if i, ok := index[label]; ok {
			entries[i].Total = entries[i].Total.Add(t.Amount)
			continue
		}
		index[label] = len(entries)
		entries = append(entries, AggregateEntry{Label: label, Total: t.Amount})
	}
	return entries
}

// GrandTotal sums all entry totals. It equals the sum of amounts over the
// visible subset the entries were aggregated from.
func GrandTotal(entries []AggregateEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Total)
	}
	return total
}
