package core

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type (
	// ID is an opaque record identifier. Data sources deliver IDs either
	// as JSON numbers or strings; both decode to the same textual key.
	ID string

	Customer struct {
		ID   ID     `json:"id"`
		Name string `json:"name"`
	}

	Transaction struct {
		ID         ID              `json:"id"`
		CustomerID ID              `json:"customer_id"`
		Date       string          `json:"date"`
		Amount     decimal.Decimal `json:"amount"`
	}

	// Dataset is the immutable snapshot of the customer directory and the
	// transaction ledger for one session. It is populated once per load
	// and never mutated; a reload produces a fresh Dataset.
	Dataset struct {
		Customers    []Customer    `json:"customers"`
		Transactions []Transaction `json:"transactions"`
	}
)

var (
	ErrEmptyID   = errors.New("empty id")
	ErrEmptyName = errors.New("empty customer name")
)

func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	// Numeric literal: keep its exact textual form as the key.
	*id = ID(string(b))
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (c Customer) Validate() error {
	if strings.TrimSpace(string(c.ID)) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(string(t.ID)) == "" {
		return ErrEmptyID
	}
	return nil
}

// AmountText returns the decimal text the amount predicate runs against:
// the shortest plain form, with trailing fractional zeros dropped
// (50 -> "50", 45.50 -> "45.5").
func (t Transaction) AmountText() string {
	s := t.Amount.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// Validate checks every record in the snapshot. A dataset with invalid
// records is rejected wholesale so the store is never partially usable.
func (ds Dataset) Validate() error {
	for _, c := range ds.Customers {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	for _, t := range ds.Transactions {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Empty reports whether the snapshot holds no records at all.
func (ds Dataset) Empty() bool {
	return len(ds.Customers) == 0 && len(ds.Transactions) == 0
}
