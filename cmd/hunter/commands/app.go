package commands

import (
	"fmt"
	"time"

	"github.com/wonny/hunter/internal/external/yahoo"
	"github.com/wonny/hunter/internal/pipeline"
	"github.com/wonny/hunter/internal/report"
	"github.com/wonny/hunter/internal/strategy"
	"github.com/wonny/hunter/internal/universe"
	"github.com/wonny/hunter/internal/valuation"
	"github.com/wonny/hunter/pkg/config"
	"github.com/wonny/hunter/pkg/httputil"
	"github.com/wonny/hunter/pkg/logger"
)

// app bundles the wired components shared by the commands
type app struct {
	cfg      *config.Config
	logger   *logger.Logger
	strategy *strategy.Config
	universe *universe.Loader
	store    *report.Store
	pipeline *pipeline.Pipeline
}

// buildApp loads configuration and wires the pipeline. A bad configuration
// or strategy file fails here, before any row is processed.
func buildApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	strategyPath := cfg.StrategyFile
	if strategyFile != "" {
		strategyPath = strategyFile
	}
	strat, err := strategy.LoadOrDefault(strategyPath)
	if err != nil {
		return nil, fmt.Errorf("load strategy: %w", err)
	}
	log.WithFields(map[string]interface{}{
		"strategy_id": strat.Meta.StrategyID,
		"version":     strat.Meta.Version,
	}).Info("Strategy loaded")

	timezone, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	httpClient := httputil.NewWithTimeout(log, cfg.Yahoo.Timeout).
		WithRateLimit(cfg.Yahoo.RequestsPerSec, cfg.Yahoo.Burst)

	loader := universe.NewLoader(cfg.Universe, httpClient, log)
	yahooClient := yahoo.NewClient(cfg.Yahoo, httpClient, log)
	engine := valuation.NewEngine(strat.Thresholds, log)
	writer := report.NewWriter(cfg.Output, log)
	store := report.NewStore()

	return &app{
		cfg:      cfg,
		logger:   log,
		strategy: strat,
		universe: loader,
		store:    store,
		pipeline: pipeline.New(loader, yahooClient, engine, writer, store, timezone, log),
	}, nil
}
