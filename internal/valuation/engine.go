// Package valuation implements the valuation computation engine: it cleanses
// raw fundamentals, computes derived ratios, resolves a fair value estimate
// through a prioritized fallback chain, and classifies each security. The
// engine is pure: no I/O, no clocks, no shared mutable state; identical input
// and thresholds produce byte-identical output in identical order.
package valuation

import (
	"github.com/wonny/hunter/internal/contracts"
	"github.com/wonny/hunter/internal/strategy"
	"github.com/wonny/hunter/pkg/logger"
)

// Engine runs the full valuation computation for one batch
type Engine struct {
	normalizer *Normalizer
	classifier *Classifier
	logger     *logger.Logger
}

// NewEngine creates an engine with an immutable set of thresholds
func NewEngine(thresholds strategy.Thresholds, log *logger.Logger) *Engine {
	return &Engine{
		normalizer: NewNormalizer(log),
		classifier: NewClassifier(thresholds),
		logger:     log,
	}
}

// Run cleanses the raw rows and applies the valuation to every survivor,
// preserving post-dedup input order. Every surviving ticker appears exactly
// once in the output regardless of classification outcome.
func (e *Engine) Run(raw []contracts.RawSnapshot) []contracts.ReportRow {
	records := e.normalizer.Cleanse(raw)
	return e.Apply(records)
}

// Apply derives all fields for already-cleansed records. Sector statistics
// are computed once up front and read-only afterwards.
func (e *Engine) Apply(records []contracts.SecurityRecord) []contracts.ReportRow {
	stats := ComputeSectorStats(records)

	rows := make([]contracts.ReportRow, 0, len(records))
	verdicts := map[contracts.Verdict]int{}
	for _, rec := range records {
		rows = append(rows, contracts.ReportRow{
			SecurityRecord: rec,
			DerivedFields:  e.derive(rec, stats),
		})
		verdicts[rows[len(rows)-1].ValuationHunter]++
	}

	e.logger.WithFields(map[string]interface{}{
		"securities": len(rows),
		"sectors":    len(stats.Sectors()),
		"pass":       verdicts[contracts.VerdictPass],
		"fail":       verdicts[contracts.VerdictFail],
		"unknown":    verdicts[contracts.VerdictUnknown],
	}).Info("Valuation applied")

	return rows
}

// derive computes every derived field for a single security
func (e *Engine) derive(rec contracts.SecurityRecord, stats *SectorStats) contracts.DerivedFields {
	var d contracts.DerivedFields

	d.PEG, d.PEGSource = ComputePEG(rec)
	d.GrahamValue = ComputeGraham(rec)
	d.SectorMedianPE = stats.SectorMedian(rec.Sector)
	d.PEMedianUsed = stats.MedianFor(rec.Sector)
	d.FairValue, d.FairValueSource = ResolveFairValue(rec, d.GrahamValue, stats)
	d.MarginOfSafety = e.classifier.MarginOfSafety(rec.Price, d.GrahamValue)

	d.PEGPass = e.classifier.PEGPass(d.PEG)
	d.PEVsSectorPass = e.classifier.PEVsSectorPass(rec.TrailingPE, d.PEMedianUsed)
	d.MarginOfSafetyPass = e.classifier.MarginOfSafetyPass(d.MarginOfSafety)
	d.ValuationHunter = e.classifier.HunterVerdict(d.PEGPass, d.PEVsSectorPass, d.MarginOfSafetyPass)

	d.PctDiff = e.classifier.PctDiff(rec.Price, d.FairValue)
	d.Valuation = e.classifier.Tier(d.PctDiff)

	return d
}
