package amqp

import (
	"encoding/json"
	"fmt"
	"time"
)

// DatasetReloadMessage announces that a fresh snapshot was loaded.
// It carries only counts and a timestamp; consumers pull the data they
// need from the serving API or the store.
type DatasetReloadMessage struct {
	Customers    int       `json:"customers"`
	Transactions int       `json:"transactions"`
	LoadedAt     time.Time `json:"loaded_at"`
}

func NewDatasetReloadMessage(customers, transactions int) *DatasetReloadMessage {
	return &DatasetReloadMessage{
		Customers:    customers,
		Transactions: transactions,
		LoadedAt:     time.Now().UTC(),
	}
}

func (m *DatasetReloadMessage) ToJSON() ([]byte, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal reload message: %w", err)
	}
	return b, nil
}

func DatasetReloadMessageFromJSON(data []byte) (*DatasetReloadMessage, error) {
	var m DatasetReloadMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal reload message: %w", err)
	}
	return &m, nil
}
