package core

import "strings"

// Query holds the two independent search terms. Both are applied
// simultaneously; an empty term matches everything.
type Query struct {
	NameTerm   string `json:"name_term"`
	AmountTerm string `json:"amount_term"`
}

// IsEmpty reports whether neither term narrows the result.
func (q Query) IsEmpty() bool {
	return q.NameTerm == "" && q.AmountTerm == ""
}

// Matches evaluates both predicates against one transaction and its
// resolved customer label.
//
// The name predicate is a case-insensitive substring test on the label.
// The amount predicate is a literal substring test on the decimal text of
// the amount, not a numeric comparison: the term "5" matches 5, 50, 125
// and 45.50 alike.
func (q Query) Matches(t Transaction, label string) bool {
	if q.NameTerm != "" &&
		!strings.Contains(strings.ToLower(label), strings.ToLower(q.NameTerm)) {
		return false
	}
	if q.AmountTerm != "" && !strings.Contains(t.AmountText(), q.AmountTerm) {
		return false
	}
	return true
}

// Filter re-scans the full transaction collection in original order and
// keeps the transactions matching the query. The result is always a
// stable subsequence of ds.Transactions; with an empty query it equals
// the whole collection.
func Filter(ds Dataset, dir *Directory, q Query) []Transaction {
	visible := make([]Transaction, 0, len(ds.Transactions))
	for _, t := range ds.Transactions {
		if q.Matches(t, dir.Resolve(t)) {
			visible = append(visible, t)
		}
	}
	return visible
}
