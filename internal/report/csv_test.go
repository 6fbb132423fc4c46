package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/hunter/internal/contracts"
	"github.com/wonny/hunter/pkg/config"
	"github.com/wonny/hunter/pkg/logger"
)

func sampleReport() *Report {
	return &Report{
		AsOfDate:     "2026-08-31",
		RunTimestamp: "2026-08-31T10:00:00Z",
		Rows: []contracts.ReportRow{
			{
				SecurityRecord: contracts.SecurityRecord{
					Ticker:     "AAPL",
					Company:    "Apple Inc.",
					Sector:     "Technology",
					Currency:   "USD",
					Price:      contracts.FloatFrom(100),
					TrailingPE: contracts.FloatFrom(25.5),
					EPS:        contracts.FloatFrom(4),
				},
				DerivedFields: contracts.DerivedFields{
					PEG:                contracts.FloatFrom(1.2),
					PEGSource:          contracts.PEGDerived,
					FairValue:          contracts.FloatFrom(95),
					FairValueSource:    contracts.SourceAnalystTarget,
					PEGPass:            contracts.CheckFail,
					PEVsSectorPass:     contracts.CheckPass,
					MarginOfSafetyPass: contracts.CheckUnknown,
					ValuationHunter:    contracts.VerdictUnknown,
					Valuation:          contracts.TierFair,
				},
			},
			{
				SecurityRecord: contracts.SecurityRecord{
					Ticker: "ZS",
					Sector: "Unknown",
				},
				DerivedFields: contracts.DerivedFields{
					PEGSource:          contracts.PEGMissing,
					FairValueSource:    contracts.SourceNone,
					PEGPass:            contracts.CheckUnknown,
					PEVsSectorPass:     contracts.CheckUnknown,
					MarginOfSafetyPass: contracts.CheckUnknown,
					ValuationHunter:    contracts.VerdictUnknown,
					Valuation:          contracts.TierUnknown,
				},
			},
		},
	}
}

func TestEncode_ColumnOrderAndMissingValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleReport()))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, "ticker", header[0])
	assert.Equal(t, "sector", header[1])
	assert.Equal(t, "valuation", header[14])
	assert.Equal(t, "run_ts_utc", header[len(header)-1])

	byName := func(rec []string, col string) string {
		for i, name := range header {
			if name == col {
				return rec[i]
			}
		}
		t.Fatalf("column %s not found", col)
		return ""
	}

	assert.Equal(t, "AAPL", byName(records[1], "ticker"))
	assert.Equal(t, "25.5", byName(records[1], "trailing_pe"))
	assert.Equal(t, "analyst_target", byName(records[1], "fair_value_source"))
	assert.Equal(t, "2026-08-31", byName(records[1], "as_of_date"))

	// missing numerics render as empty cells, not sentinels
	assert.Equal(t, "", byName(records[2], "price"))
	assert.Equal(t, "", byName(records[2], "graham_value"))
	assert.Equal(t, "none", byName(records[2], "fair_value_source"))
	assert.Equal(t, "unknown", byName(records[2], "valuation"))
}

func TestEncode_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, Encode(&first, sampleReport()))
	require.NoError(t, Encode(&second, sampleReport()))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriter_WritesLatestAndDatedCopy(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(config.OutputConfig{
		Dir:            dir,
		Basename:       "nasdaq100_latest.csv",
		WriteDatedCopy: true,
		DatedPrefix:    "nasdaq100",
	}, logger.NewWriter(io.Discard))

	paths, err := w.Write(sampleReport())
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "nasdaq100_latest.csv"), paths[0])
	assert.Equal(t, filepath.Join(dir, "nasdaq100_2026-08-31.csv"), paths[1])

	latest, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	dated, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, latest, dated)
	assert.Equal(t, w.LatestPath(), paths[0])
}

func TestWriter_DatedCopyDisabled(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(config.OutputConfig{
		Dir:      dir,
		Basename: "nasdaq100_latest.csv",
	}, logger.NewWriter(io.Discard))

	paths, err := w.Write(sampleReport())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "nasdaq100_latest.csv")}, paths)
}
