// Package pipeline wires the full run: universe -> fundamentals -> valuation
// engine -> report artifact.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/hunter/internal/external/yahoo"
	"github.com/wonny/hunter/internal/report"
	"github.com/wonny/hunter/internal/universe"
	"github.com/wonny/hunter/internal/valuation"
	"github.com/wonny/hunter/pkg/logger"
)

// Pipeline runs one end-to-end valuation batch
type Pipeline struct {
	universe *universe.Loader
	yahoo    *yahoo.Client
	engine   *valuation.Engine
	writer   *report.Writer
	store    *report.Store // optional; nil when no API is running
	timezone *time.Location
	logger   *logger.Logger
}

// New creates a pipeline. store may be nil for one-shot CLI runs.
func New(
	loader *universe.Loader,
	client *yahoo.Client,
	engine *valuation.Engine,
	writer *report.Writer,
	store *report.Store,
	timezone *time.Location,
	log *logger.Logger,
) *Pipeline {
	return &Pipeline{
		universe: loader,
		yahoo:    client,
		engine:   engine,
		writer:   writer,
		store:    store,
		timezone: timezone,
		logger:   log,
	}
}

// Run executes one batch: resolve tickers, fetch fundamentals, run the
// valuation engine, write the artifact. The engine stage is pure; all I/O
// stays out here.
func (p *Pipeline) Run(ctx context.Context) (*report.Report, error) {
	start := time.Now()

	// Business date in the configured timezone; UTC timestamp for traceability
	asOfDate := time.Now().In(p.timezone).Format("2006-01-02")
	runTS := time.Now().UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z")

	p.logger.WithFields(map[string]interface{}{
		"as_of_date": asOfDate,
		"run_ts_utc": runTS,
	}).Info("Pipeline start")

	tickers, err := p.universe.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load universe: %w", err)
	}

	fetchStart := time.Now()
	snapshots := p.yahoo.FetchAll(ctx, tickers)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch fundamentals: %w", err)
	}
	p.logger.WithField("duration", time.Since(fetchStart)).Info("Fundamentals fetched")

	rows := p.engine.Run(snapshots)

	result := &report.Report{
		AsOfDate:     asOfDate,
		RunTimestamp: runTS,
		Rows:         rows,
	}

	paths, err := p.writer.Write(result)
	if err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	if p.store != nil {
		p.store.Set(result)
	}

	p.logger.WithFields(map[string]interface{}{
		"securities": len(rows),
		"paths":      paths,
		"duration":   time.Since(start),
	}).Info("Pipeline finished")

	return result, nil
}
