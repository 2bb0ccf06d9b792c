package store

import (
	"sync"

	"github.com/chenghui/supervision-go/internal/domain/report"
)

// ReportStore is the authoritative in-memory report collection for the running
// session. It is only mutated through Replace (gateway fetch-all) and Put
// (mirrored create/update), so callers always observe the last successfully
// persisted state.
type ReportStore struct {
	mu    sync.RWMutex
	byID  map[string]report.Report
	order []string // most-recent-first
}

func NewReportStore() *ReportStore {
	return &ReportStore{byID: make(map[string]report.Report)}
}

// Replace swaps in the full collection, keeping the given order (the gateway
// returns date-descending).
func (s *ReportStore) Replace(reports []report.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[string]report.Report, len(reports))
	s.order = make([]string, 0, len(reports))
	for _, r := range reports {
		if _, dup := s.byID[r.ID]; dup {
			continue
		}
		s.byID[r.ID] = r
		s.order = append(s.order, r.ID)
	}
}

// Put replaces an existing report in place or prepends a new one.
func (s *ReportStore) Put(r report.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[r.ID]; !ok {
		s.order = append([]string{r.ID}, s.order...)
	}
	s.byID[r.ID] = r
}

func (s *ReportStore) Get(id string) (report.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	return r, ok
}

// All returns a copy of the collection in store order.
func (s *ReportStore) All() []report.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]report.Report, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *ReportStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
