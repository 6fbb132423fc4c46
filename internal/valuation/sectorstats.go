package valuation

import (
	"sort"

	"github.com/wonny/hunter/internal/contracts"
)

// SectorStats holds per-sector and universe-wide median trailing P/E for one
// run. Computed once after cleansing, read-only afterwards, never persisted.
type SectorStats struct {
	medians  map[string]contracts.Float
	order    []string // sectors in first-appearance order
	universe contracts.Float
}

// ComputeSectorStats groups valid trailing P/E values by sector and computes
// the median per group plus a universe-wide fallback median. Two explicit
// passes: group, then reduce. Grouping order derives from input order, so
// identical input always yields identical stats.
func ComputeSectorStats(records []contracts.SecurityRecord) *SectorStats {
	groups := make(map[string][]float64)
	order := make([]string, 0)
	all := make([]float64, 0, len(records))

	for _, rec := range records {
		if _, exists := groups[rec.Sector]; !exists {
			groups[rec.Sector] = nil
			order = append(order, rec.Sector)
		}
		pe, ok := rec.TrailingPE.Float64()
		if !ok {
			continue
		}
		groups[rec.Sector] = append(groups[rec.Sector], pe)
		all = append(all, pe)
	}

	stats := &SectorStats{
		medians:  make(map[string]contracts.Float, len(order)),
		order:    order,
		universe: median(all),
	}
	for _, sector := range order {
		stats.medians[sector] = median(groups[sector])
	}

	return stats
}

// SectorMedian returns the median trailing P/E of the sector itself; missing
// when the sector has no valid members.
func (s *SectorStats) SectorMedian(sector string) contracts.Float {
	return s.medians[sector]
}

// UniverseMedian returns the median over all valid trailing P/E values;
// missing when the universe has none.
func (s *SectorStats) UniverseMedian() contracts.Float {
	return s.universe
}

// MedianFor returns the applicable median for a sector: the sector's own
// median, else the universe median, else missing.
func (s *SectorStats) MedianFor(sector string) contracts.Float {
	if m := s.medians[sector]; m.Valid {
		return m
	}
	return s.universe
}

// Sectors returns sector names in first-appearance order
func (s *SectorStats) Sectors() []string {
	return s.order
}

// median computes the standard median: exact middle for odd counts, average
// of the two middle values for even counts. Empty input yields missing.
func median(values []float64) contracts.Float {
	if len(values) == 0 {
		return contracts.MissingFloat()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return contracts.FloatFrom(sorted[mid])
	}
	return contracts.FloatFrom((sorted[mid-1] + sorted[mid]) / 2)
}
