package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"txboard/internal/core"
)

// HTTPSource fetches the dataset document from a read-only JSON endpoint.
// One GET per load, no retries.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *HTTPSource) Load(ctx context.Context) (core.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return core.Dataset{}, fmt.Errorf("build dataset request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return core.Dataset{}, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return core.Dataset{}, fmt.Errorf("fetch dataset: unexpected status %s", resp.Status)
	}

	ds, err := decodeDocument(resp.Body)
	if err != nil {
		return core.Dataset{}, fmt.Errorf("read dataset from %s: %w", s.url, err)
	}

	slog.InfoContext(ctx, "Dataset loaded from endpoint",
		"url", s.url,
		"customers", len(ds.Customers),
		"transactions", len(ds.Transactions))
	return ds, nil
}
