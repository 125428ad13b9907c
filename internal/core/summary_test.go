package core

import "testing"

func TestAggregateScenarios(t *testing.T) {
	ds := testDataset()
	dir := NewDirectory(ds.Customers)

	cases := []struct {
		name   string
		q      Query
		labels []string
		totals []string
	}{
		{"all visible", Query{}, []string{"Alice", UnknownLabel}, []string{"50", "30"}},
		{"name term", Query{NameTerm: "ali"}, []string{"Alice"}, []string{"50"}},
		{"amount term", Query{AmountTerm: "3"}, []string{UnknownLabel}, []string{"30"}},
		{"nothing visible", Query{NameTerm: "ali", AmountTerm: "9"}, nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries := Aggregate(Filter(ds, dir, tc.q), dir)
			if len(entries) != len(tc.labels) {
				t.Fatalf("got %d entries, want %d", len(entries), len(tc.labels))
			}
			for i := range tc.labels {
				if entries[i].Label != tc.labels[i] {
					t.Fatalf("entry %d label %q, want %q", i, entries[i].Label, tc.labels[i])
				}
				if !entries[i].Total.Equal(amt(tc.totals[i])) {
					t.Fatalf("entry %d total %s, want %s", i, entries[i].Total, tc.totals[i])
				}
			}
		})
	}
}

func TestAggregateFirstSeenOrder(t *testing.T) {
	// "Zed" sorts after Alice alphabetically but appears first in the
	// ledger, so it must come out first.
	ds := Dataset{
		Customers: []Customer{
			{ID: "1", Name: "Alice"},
			{ID: "2", Name: "Zed"},
		},
		Transactions: []Transaction{
			{ID: "10", CustomerID: "2", Amount: amt("5")},
			{ID: "11", CustomerID: "1", Amount: amt("7")},
			{ID: "12", CustomerID: "2", Amount: amt("3")},
		},
	}
	dir := NewDirectory(ds.Customers)
	entries := Aggregate(ds.Transactions, dir)

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Label != "Zed" || entries[1].Label != "Alice" {
		t.Fatalf("order %q, %q; want Zed, Alice", entries[0].Label, entries[1].Label)
	}
	if !entries[0].Total.Equal(amt("8")) {
		t.Fatalf("Zed total %s, want 8", entries[0].Total)
	}
}

func TestAggregateConservation(t *testing.T) {
	ds := testDataset()
	dir := NewDirectory(ds.Customers)

	for _, q := range []Query{{}, {NameTerm: "ali"}, {AmountTerm: "0"}, {AmountTerm: "3"}} {
		visible := Filter(ds, dir, q)
		entries := Aggregate(visible, dir)

		sum := amt("0")
		for _, tx := range visible {
			sum = sum.Add(tx.Amount)
		}
		if !GrandTotal(entries).Equal(sum) {
			t.Fatalf("query %+v: entries total %s, subset total %s", q, GrandTotal(entries), sum)
		}

		seen := map[string]bool{}
		for _, e := range entries {
			if seen[e.Label] {
				t.Fatalf("query %+v: duplicate label %q", q, e.Label)
			}
			seen[e.Label] = true
		}
		for _, tx := range visible {
			if !seen[dir.Resolve(tx)] {
				t.Fatalf("query %+v: label %q missing from entries", q, dir.Resolve(tx))
			}
		}
	}
}

func TestAggregateExactDecimalSum(t *testing.T) {
	ds := Dataset{
		Customers:    []Customer{{ID: "1", Name: "Alice"}},
		Transactions: []Transaction{
			{ID: "10", CustomerID: "1", Amount: amt("0.1")},
			{ID: "11", CustomerID: "1", Amount: amt("0.2")},
		},
	}
	dir := NewDirectory(ds.Customers)
	entries := Aggregate(ds.Transactions, dir)
	if len(entries) != 1 || !entries[0].Total.Equal(amt("0.3")) {
		t.Fatalf("got %+v, want one entry totalling 0.3", entries)
	}
}
