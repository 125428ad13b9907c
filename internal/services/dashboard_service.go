package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"txboard/internal/amqp"
	"txboard/internal/cache"
	"txboard/internal/core"
	"txboard/internal/log"
	"txboard/internal/source"
)

// filterResult memoizes one recompute: the visible subset and its
// aggregation, keyed by the exact search term pair.
type filterResult struct {
	visible []core.Transaction
	entries []core.AggregateEntry
}

// DashboardService owns the dataset snapshot and the search state.
// All mutation and recomputation is serialized behind one mutex, so a
// term change and the recompute it triggers are atomic with respect to
// readers.
type DashboardService struct {
	mu sync.Mutex

	src        source.Source
	amqpClient *amqp.Client

	dataset core.Dataset
	dir     *core.Directory
	loaded  bool

	query   core.Query
	visible []core.Transaction
	entries []core.AggregateEntry

	results *cache.LRUCache[filterResult]
	logger  *log.Logger
}

func NewDashboardService(src source.Source, amqpClient *amqp.Client, cacheSize int, cacheTTL time.Duration) *DashboardService {
	s := &DashboardService{
		src:        src,
		amqpClient: amqpClient,
		dir:        core.NewDirectory(nil),
		results:    cache.NewLRUCache[filterResult](cacheSize, cacheTTL),
		logger:     log.New(log.DefaultConfig()).WithComponent(log.ComponentDashboard),
	}
	// Initial state: empty terms over an empty snapshot.
	s.recomputeLocked()
	return s
}

// Load fetches a fresh snapshot from the source. On failure the store
// keeps its previous (possibly empty) state; the error is returned for
// the caller to log, not to halt on.
func (s *DashboardService) Load(ctx context.Context) error {
	ds, err := s.src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	s.mu.Lock()
	s.dataset = ds
	s.dir = core.NewDirectory(ds.Customers)
	s.loaded = true
	flushed := s.results.Flush()
	s.recomputeLocked()
	customers, transactions := len(ds.Customers), len(ds.Transactions)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Dashboard snapshot replaced",
		log.FieldCustomers, customers,
		log.FieldTransactions, transactions,
		"cache_entries_flushed", flushed)

	if err := s.publishReload(ctx, customers, transactions); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish reload message", log.FieldError, err)
		// The snapshot is live regardless; notification is best effort.
	}
	return nil
}

// SetNameTerm replaces the name search term and recomputes. The amount
// term is left untouched.
func (s *DashboardService) SetNameTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.query.NameTerm == term {
		return
	}
	s.query.NameTerm = term
	s.recomputeLocked()
}

// SetAmountTerm replaces the amount search term and recomputes. The name
// term is left untouched.
func (s *DashboardService) SetAmountTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.query.AmountTerm == term {
		return
	}
	s.query.AmountTerm = term
	s.recomputeLocked()
}

// recomputeLocked re-derives the visible subset and its aggregation from
// the full snapshot and both current terms. Callers hold s.mu.
func (s *DashboardService) recomputeLocked() {
	key := s.query.NameTerm + "\x1f" + s.query.AmountTerm
	if res, ok := s.results.Get(key); ok {
		s.visible, s.entries = res.visible, res.entries
		return
	}

	s.visible = core.Filter(s.dataset, s.dir, s.query)
	s.entries = core.Aggregate(s.visible, s.dir)
	s.results.Set(key, filterResult{visible: s.visible, entries: s.entries})
}

// Query returns the current search state.
func (s *DashboardService) Query() core.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Visible returns the latest visible subset.
func (s *DashboardService) Visible() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.visible))
	copy(out, s.visible)
	return out
}

// Summary returns the latest aggregate entries.
func (s *DashboardService) Summary() []core.AggregateEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.AggregateEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Resolve returns the customer label for one transaction of the current
// snapshot.
func (s *DashboardService) Resolve(t core.Transaction) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.Resolve(t)
}

// Stats describes the current store for health reporting.
type Stats struct {
	Loaded       bool `json:"loaded"`
	Customers    int  `json:"customers"`
	Transactions int  `json:"transactions"`
	Visible      int  `json:"visible"`
}

func (s *DashboardService) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Loaded:       s.loaded,
		Customers:    len(s.dataset.Customers),
		Transactions: len(s.dataset.Transactions),
		Visible:      len(s.visible),
	}
}

func (s *DashboardService) publishReload(ctx context.Context, customers, transactions int) error {
	if s.amqpClient == nil {
		return nil
	}
	return s.amqpClient.PublishDatasetReload(ctx, customers, transactions)
}

// Close releases the AMQP connection if one is attached.
func (s *DashboardService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close amqp client: %w", err)
		}
	}
	return nil
}
