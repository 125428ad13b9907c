package amqp

import (
	"testing"
	"time"
)

func TestDatasetReloadMessageRoundTrip(t *testing.T) {
	msg := NewDatasetReloadMessage(3, 12)
	if msg.LoadedAt.IsZero() {
		t.Fatal("LoadedAt should be stamped")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := DatasetReloadMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Customers != 3 || got.Transactions != 12 {
		t.Fatalf("got %d/%d, want 3/12", got.Customers, got.Transactions)
	}
	if !got.LoadedAt.Equal(msg.LoadedAt.Truncate(time.Nanosecond)) {
		t.Fatalf("LoadedAt changed: %v vs %v", got.LoadedAt, msg.LoadedAt)
	}
}

func TestDatasetReloadMessageFromJSONInvalid(t *testing.T) {
	if _, err := DatasetReloadMessageFromJSON([]byte("not json")); err == nil {
		t.Fatal("expected error for invalid payload")
	}
}
