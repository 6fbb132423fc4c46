// Package universe resolves the NASDAQ-100 ticker list: scraped from the
// Wikipedia constituents table when enabled, with a local CSV fallback list.
package universe

import (
	"context"
	"fmt"
	"sort"

	"github.com/wonny/hunter/internal/valuation"
	"github.com/wonny/hunter/pkg/config"
	"github.com/wonny/hunter/pkg/httputil"
	"github.com/wonny/hunter/pkg/logger"
)

// minPlausibleCount guards against a restructured Wikipedia page: a
// constituents table with fewer symbols than this is not trusted.
const minPlausibleCount = 80

// Loader acquires the index ticker list
// SSOT: ticker list acquisition happens only here
type Loader struct {
	cfg        config.UniverseConfig
	httpClient *httputil.Client
	logger     *logger.Logger
}

// NewLoader creates a new universe loader
func NewLoader(cfg config.UniverseConfig, client *httputil.Client, log *logger.Logger) *Loader {
	return &Loader{
		cfg:        cfg,
		httpClient: client,
		logger:     log,
	}
}

// Load returns the ordered ticker list: Wikipedia first when enabled, then
// the local fallback file. Both empty is an error; the pipeline cannot run
// without a universe.
func (l *Loader) Load(ctx context.Context) ([]string, error) {
	if l.cfg.UseWikipedia {
		tickers, err := l.fromWikipedia(ctx)
		if err != nil {
			l.logger.WithError(err).Warn("Wikipedia ticker scrape failed, trying fallback file")
		} else if len(tickers) > 0 {
			l.logger.WithFields(map[string]interface{}{
				"count":  len(tickers),
				"source": "wikipedia",
			}).Info("Loaded universe")
			return tickers, nil
		}
	}

	tickers, err := l.fromFile(l.cfg.FallbackFile)
	if err != nil {
		return nil, fmt.Errorf("load fallback ticker file: %w", err)
	}
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no tickers found: enable Wikipedia or provide %s", l.cfg.FallbackFile)
	}

	l.logger.WithFields(map[string]interface{}{
		"count":  len(tickers),
		"source": "file",
	}).Info("Loaded universe")
	return tickers, nil
}

// sortedUnique normalizes, deduplicates and sorts symbols; empty entries are
// dropped
func sortedUnique(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	tickers := make([]string, 0, len(raw))
	for _, r := range raw {
		ticker := valuation.NormalizeTicker(r)
		if ticker == "" || seen[ticker] {
			continue
		}
		seen[ticker] = true
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}
