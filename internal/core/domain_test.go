package core

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestIDUnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want ID
	}{
		{`1`, "1"},
		{`42`, "42"},
		{`"abc"`, "abc"},
		{`"7"`, "7"},
		{`null`, ""},
	}
	for i, tc := range cases {
		var id ID
		if err := json.Unmarshal([]byte(tc.in), &id); err != nil {
			t.Fatalf("case %d unmarshal %s: %v", i, tc.in, err)
		}
		if id != tc.want {
			t.Fatalf("case %d got %q, want %q", i, id, tc.want)
		}
	}
}

func TestDatasetDecode(t *testing.T) {
	doc := `{
		"customers":[{"id":1,"name":"Alice"}],
		"transactions":[{"id":10,"customer_id":1,"date":"2022-01-01","amount":45.50}]
	}`
	var ds Dataset
	if err := json.Unmarshal([]byte(doc), &ds); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ds.Customers) != 1 || len(ds.Transactions) != 1 {
		t.Fatalf("unexpected sizes: %d customers, %d transactions", len(ds.Customers), len(ds.Transactions))
	}
	tx := ds.Transactions[0]
	if tx.CustomerID != "1" {
		t.Fatalf("customer_id = %q, want %q", tx.CustomerID, "1")
	}
	if !tx.Amount.Equal(decimal.RequireFromString("45.5")) {
		t.Fatalf("amount = %s, want 45.5", tx.Amount)
	}
}

func TestAmountText(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"5", "5"},
		{"50", "50"},
		{"125", "125"},
		{"45.50", "45.5"},
		{"30.00", "30"},
		{"0.10", "0.1"},
		{"-12.30", "-12.3"},
	}
	for i, tc := range cases {
		tx := Transaction{ID: "1", Amount: decimal.RequireFromString(tc.amount)}
		if got := tx.AmountText(); got != tc.want {
			t.Fatalf("case %d: AmountText(%s) = %q, want %q", i, tc.amount, got, tc.want)
		}
	}
}

func TestDatasetValidate(t *testing.T) {
	good := Dataset{
		Customers:    []Customer{{ID: "1", Name: "Alice"}},
		Transactions: []Transaction{{ID: "10", CustomerID: "1"}},
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Dataset{
		{Customers: []Customer{{ID: "", Name: "Alice"}}},
		{Customers: []Customer{{ID: "1", Name: " "}}},
		{Transactions: []Transaction{{ID: ""}}},
	}
	for i, ds := range bads {
		if err := ds.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDatasetEmpty(t *testing.T) {
	if !(Dataset{}).Empty() {
		t.Fatal("zero dataset should be empty")
	}
	if (Dataset{Customers: []Customer{{ID: "1", Name: "A"}}}).Empty() {
		t.Fatal("dataset with customers should not be empty")
	}
}
