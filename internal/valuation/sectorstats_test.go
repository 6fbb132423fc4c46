package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/hunter/internal/contracts"
)

func record(ticker, sector string, trailingPE contracts.Float) contracts.SecurityRecord {
	return contracts.SecurityRecord{Ticker: ticker, Sector: sector, TrailingPE: trailingPE}
}

func TestComputeSectorStats_Medians(t *testing.T) {
	records := []contracts.SecurityRecord{
		record("A", "Tech", contracts.FloatFrom(10)),
		record("B", "Tech", contracts.FloatFrom(30)),
		record("C", "Tech", contracts.FloatFrom(20)),
		record("D", "Health", contracts.FloatFrom(12)),
		record("E", "Health", contracts.FloatFrom(18)),
		record("F", "Health", contracts.MissingFloat()),
	}

	stats := ComputeSectorStats(records)

	// odd count: exact middle
	assert.Equal(t, contracts.FloatFrom(20), stats.SectorMedian("Tech"))
	// even count: average of the two middle values
	assert.Equal(t, contracts.FloatFrom(15), stats.SectorMedian("Health"))
	// universe: median of 10,12,18,20,30 = 18
	assert.Equal(t, contracts.FloatFrom(18), stats.UniverseMedian())
}

func TestComputeSectorStats_DuplicateValuesCountWithMultiplicity(t *testing.T) {
	records := []contracts.SecurityRecord{
		record("A", "Tech", contracts.FloatFrom(10)),
		record("B", "Tech", contracts.FloatFrom(10)),
		record("C", "Tech", contracts.FloatFrom(40)),
	}

	stats := ComputeSectorStats(records)
	assert.Equal(t, contracts.FloatFrom(10), stats.SectorMedian("Tech"))
}

func TestComputeSectorStats_UniverseFallback(t *testing.T) {
	records := []contracts.SecurityRecord{
		record("A", "Tech", contracts.FloatFrom(10)),
		record("B", "Empty", contracts.MissingFloat()),
	}

	stats := ComputeSectorStats(records)

	// sector with no valid members has no median of its own
	assert.False(t, stats.SectorMedian("Empty").Valid)
	// but the applicable median falls back to the universe
	assert.Equal(t, contracts.FloatFrom(10), stats.MedianFor("Empty"))
	assert.Equal(t, contracts.FloatFrom(10), stats.MedianFor("Tech"))
}

func TestComputeSectorStats_EmptyUniverse(t *testing.T) {
	records := []contracts.SecurityRecord{
		record("A", "Tech", contracts.MissingFloat()),
		record("B", "Health", contracts.MissingFloat()),
	}

	stats := ComputeSectorStats(records)

	assert.False(t, stats.UniverseMedian().Valid)
	assert.False(t, stats.MedianFor("Tech").Valid)
	assert.False(t, stats.MedianFor("Health").Valid)
}

func TestComputeSectorStats_SectorOrderFollowsInput(t *testing.T) {
	records := []contracts.SecurityRecord{
		record("A", "Tech", contracts.FloatFrom(10)),
		record("B", "Health", contracts.FloatFrom(12)),
		record("C", "Tech", contracts.FloatFrom(14)),
		record("D", "Energy", contracts.FloatFrom(8)),
	}

	stats := ComputeSectorStats(records)
	require.Equal(t, []string{"Tech", "Health", "Energy"}, stats.Sectors())
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   contracts.Float
	}{
		{"empty", nil, contracts.MissingFloat()},
		{"single", []float64{5}, contracts.FloatFrom(5)},
		{"odd", []float64{3, 1, 2}, contracts.FloatFrom(2)},
		{"even", []float64{4, 1, 3, 2}, contracts.FloatFrom(2.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, median(tt.values))
		})
	}
}
