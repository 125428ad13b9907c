package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"txboard/internal/core"
	"txboard/internal/log"
)

// transactionView is a table row: the resolved customer label followed by
// the transaction fields. Amounts carry their filterable decimal text.
type transactionView struct {
	Customer string  `json:"customer"`
	ID       core.ID `json:"id"`
	Date     string  `json:"date"`
	Amount   string  `json:"amount"`
}

// totalView is one chart slice.
type totalView struct {
	Customer string `json:"customer"`
	Total    string `json:"total"`
}

// applyTerms feeds present search parameters into the dashboard. Each
// parameter carries the full current text of its input field; an absent
// parameter leaves that term unchanged.
func (s *Server) applyTerms(r *http.Request) {
	q := r.URL.Query()
	if q.Has("name") {
		s.dashboard.SetNameTerm(q.Get("name"))
	}
	if q.Has("amount") {
		s.dashboard.SetAmountTerm(q.Get("amount"))
	}
}

func (s *Server) transactionViews() []transactionView {
	visible := s.dashboard.Visible()
	rows := make([]transactionView, 0, len(visible))
	for _, t := range visible {
		rows = append(rows, transactionView{
			Customer: s.dashboard.Resolve(t),
			ID:       t.ID,
			Date:     t.Date,
			Amount:   t.AmountText(),
		})
	}
	return rows
}

func (s *Server) totalViews() []totalView {
	entries := s.dashboard.Summary()
	totals := make([]totalView, 0, len(entries))
	for _, e := range entries {
		totals = append(totals, totalView{Customer: e.Label, Total: e.Total.String()})
	}
	return totals
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded",
			log.FieldPath, r.URL.Path,
			log.FieldComponent, log.ComponentHTTP)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	s.applyTerms(r)

	data := struct {
		Query  core.Query
		Rows   []transactionView
		Totals []totalView
	}{
		Query:  s.dashboard.Query(),
		Rows:   s.transactionViews(),
		Totals: s.totalViews(),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleTransactions returns the current visible subset.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.applyTerms(r)
	writeJSON(w, http.StatusOK, s.transactionViews())
}

// handleSummary returns the current aggregate entries.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.applyTerms(r)
	writeJSON(w, http.StatusOK, s.totalViews())
}

// handleReload re-fetches the dataset snapshot from the source.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := s.dashboard.Load(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Dataset reload failed", log.FieldError, err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "dataset reload failed"})
		return
	}
	writeJSON(w, http.StatusOK, s.dashboard.Stats())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed encoding JSON response", "error", err)
	}
}
