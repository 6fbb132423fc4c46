// Package report owns the tabular run artifact: the CSV files on disk and
// the in-memory copy served by the read API.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wonny/hunter/internal/contracts"
	"github.com/wonny/hunter/pkg/config"
	"github.com/wonny/hunter/pkg/logger"
)

// Report is one run's complete output
type Report struct {
	AsOfDate     string               `json:"as_of_date"`
	RunTimestamp string               `json:"run_ts_utc"`
	Rows         []contracts.ReportRow `json:"rows"`
}

// columns is the stable output column order. The first fifteen are the
// classification contract consumed downstream; the rest are supplemental.
var columns = []string{
	"ticker",
	"sector",
	"price",
	"eps",
	"trailing_pe",
	"peg",
	"graham_value",
	"fair_value",
	"fair_value_source",
	"margin_of_safety",
	"peg_pass",
	"pe_vs_sector_pass",
	"margin_of_safety_pass",
	"valuation_hunter",
	"valuation",
	"company",
	"currency",
	"market_cap",
	"earnings_growth",
	"book_value_per_share",
	"analyst_target_mean_price",
	"sector_median_pe",
	"pe_median_used",
	"peg_source",
	"pct_diff",
	"as_of_date",
	"run_ts_utc",
}

// Writer writes the run artifact to disk
// SSOT: the CSV layout is defined only here
type Writer struct {
	cfg    config.OutputConfig
	logger *logger.Logger
}

// NewWriter creates a new artifact writer
func NewWriter(cfg config.OutputConfig, log *logger.Logger) *Writer {
	return &Writer{cfg: cfg, logger: log}
}

// Write writes the latest CSV and, when configured, a dated copy. It returns
// the paths written.
func (w *Writer) Write(report *Report) ([]string, error) {
	if err := os.MkdirAll(w.cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	latestPath := filepath.Join(w.cfg.Dir, w.cfg.Basename)
	if err := w.writeFile(latestPath, report); err != nil {
		return nil, err
	}
	paths := []string{latestPath}

	if w.cfg.WriteDatedCopy {
		datedPath := filepath.Join(w.cfg.Dir, fmt.Sprintf("%s_%s.csv", w.cfg.DatedPrefix, report.AsOfDate))
		if datedPath != latestPath {
			if err := w.writeFile(datedPath, report); err != nil {
				return nil, err
			}
			paths = append(paths, datedPath)
		}
	}

	w.logger.WithFields(map[string]interface{}{
		"rows":  len(report.Rows),
		"paths": paths,
	}).Info("Wrote report artifact")

	return paths, nil
}

// LatestPath returns the location of the latest CSV artifact
func (w *Writer) LatestPath() string {
	return filepath.Join(w.cfg.Dir, w.cfg.Basename)
}

func (w *Writer) writeFile(path string, report *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, report); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Encode writes the report as CSV to any writer. Row order follows the
// report's row order, so identical runs produce byte-identical files.
func Encode(out io.Writer, report *Report) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(columns); err != nil {
		return err
	}
	for _, row := range report.Rows {
		if err := writer.Write(rowValues(row, report.AsOfDate, report.RunTimestamp)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// rowValues renders one row in column order; missing numerics render empty
func rowValues(row contracts.ReportRow, asOfDate, runTS string) []string {
	return []string{
		row.Ticker,
		row.Sector,
		row.Price.String(),
		row.EPS.String(),
		row.TrailingPE.String(),
		row.PEG.String(),
		row.GrahamValue.String(),
		row.FairValue.String(),
		string(row.FairValueSource),
		row.MarginOfSafety.String(),
		string(row.PEGPass),
		string(row.PEVsSectorPass),
		string(row.MarginOfSafetyPass),
		string(row.ValuationHunter),
		string(row.Valuation),
		row.Company,
		row.Currency,
		row.MarketCap.String(),
		row.EarningsGrowth.String(),
		row.BookValue.String(),
		row.AnalystTarget.String(),
		row.SectorMedianPE.String(),
		row.PEMedianUsed.String(),
		string(row.PEGSource),
		row.PctDiff.String(),
		asOfDate,
		runTS,
	}
}
