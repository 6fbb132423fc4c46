// Package jobs holds the scheduled job implementations.
package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/hunter/internal/pipeline"
	"github.com/wonny/hunter/pkg/logger"
)

// ValuationJob runs the valuation pipeline on a cron schedule
type ValuationJob struct {
	pipeline *pipeline.Pipeline
	schedule string
	logger   *logger.Logger
}

// NewValuationJob creates the daily valuation job
func NewValuationJob(p *pipeline.Pipeline, schedule string, log *logger.Logger) *ValuationJob {
	return &ValuationJob{
		pipeline: p,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *ValuationJob) Name() string {
	return "valuation_run"
}

// Schedule returns the configured cron expression
func (j *ValuationJob) Schedule() string {
	return j.schedule
}

// Run executes one pipeline pass
func (j *ValuationJob) Run(ctx context.Context) error {
	j.logger.Info("Starting scheduled valuation run")

	result, err := j.pipeline.Run(ctx)
	if err != nil {
		return fmt.Errorf("valuation run: %w", err)
	}

	j.logger.WithFields(map[string]interface{}{
		"as_of_date": result.AsOfDate,
		"securities": len(result.Rows),
	}).Info("Scheduled valuation run finished")

	return nil
}
