package report

import (
	"sync"

	"github.com/wonny/hunter/internal/contracts"
)

// Store holds the latest report in memory for the read API. The scheduler
// replaces it wholesale after each run; readers only ever see a complete
// report.
type Store struct {
	mu     sync.RWMutex
	latest *Report
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Set replaces the latest report
func (s *Store) Set(r *Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = r
}

// Latest returns the most recent report, or nil before the first run
func (s *Store) Latest() *Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Summary aggregates verdict and tier counts of the latest report
type Summary struct {
	AsOfDate     string                    `json:"as_of_date"`
	RunTimestamp string                    `json:"run_ts_utc"`
	Securities   int                       `json:"securities"`
	Hunter       map[contracts.Verdict]int `json:"valuation_hunter"`
	Valuation    map[contracts.Tier]int    `json:"valuation"`
}

// Summarize returns aggregate counts for the latest report, or nil before
// the first run
func (s *Store) Summarize() *Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return nil
	}

	summary := &Summary{
		AsOfDate:     s.latest.AsOfDate,
		RunTimestamp: s.latest.RunTimestamp,
		Securities:   len(s.latest.Rows),
		Hunter:       make(map[contracts.Verdict]int),
		Valuation:    make(map[contracts.Tier]int),
	}
	for _, row := range s.latest.Rows {
		summary.Hunter[row.ValuationHunter]++
		summary.Valuation[row.Valuation]++
	}

	return summary
}
