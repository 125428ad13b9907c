package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDoc = `{
	"customers": [
		{"id": 1, "name": "Alice"},
		{"id": 2, "name": "Bob"}
	],
	"transactions": [
		{"id": 10, "customer_id": 1, "date": "2022-01-01", "amount": 50},
		{"id": 11, "customer_id": 99, "date": "2022-01-02", "amount": 30}
	]
}`

func TestDecodeDocument(t *testing.T) {
	ds, err := decodeDocument(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ds.Customers) != 2 || len(ds.Transactions) != 2 {
		t.Fatalf("got %d customers, %d transactions", len(ds.Customers), len(ds.Transactions))
	}
	if ds.Transactions[0].AmountText() != "50" {
		t.Fatalf("amount text %q, want 50", ds.Transactions[0].AmountText())
	}
}

func TestDecodeDocumentLegacyKey(t *testing.T) {
	doc := `{
		"customers": [{"id": 1, "name": "Alice"}],
		"transaction": [{"id": 10, "customer_id": 1, "amount": 5}]
	}`
	ds, err := decodeDocument(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ds.Transactions) != 1 {
		t.Fatalf("got %d transactions from legacy key, want 1", len(ds.Transactions))
	}
}

func TestDecodeDocumentMalformed(t *testing.T) {
	cases := []string{
		`{"customers": [{"id": 1, "name": "Alice"}], "transactions": [{"id": 10, "amount": "not-a-number"}]}`,
		`not json`,
		`{"customers": [{"id": "", "name": "Alice"}]}`,
	}
	for i, doc := range cases {
		if _, err := decodeDocument(strings.NewReader(doc)); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := NewFileSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(ds.Transactions))
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	ds, err := NewHTTPSource(srv.URL).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds.Customers) != 2 {
		t.Fatalf("got %d customers, want 2", len(ds.Customers))
	}
}

func TestHTTPSourceBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewHTTPSource(srv.URL).Load(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
