// Package yahoo fetches per-security fundamentals snapshots from the Yahoo
// Finance quoteSummary API.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/wonny/hunter/internal/contracts"
	"github.com/wonny/hunter/pkg/config"
	"github.com/wonny/hunter/pkg/httputil"
	"github.com/wonny/hunter/pkg/logger"
)

// modules is the fixed quoteSummary module list covering every raw field the
// valuation engine consumes
const modules = "assetProfile,price,summaryDetail,defaultKeyStatistics,financialData"

// Client is the Yahoo Finance API client
// SSOT: all Yahoo Finance calls go through this client
type Client struct {
	httpClient *httputil.Client
	baseURL    string
	logger     *logger.Logger
}

// NewClient creates a new Yahoo Finance client. The shared HTTP client is
// expected to carry the provider rate limit.
func NewClient(cfg config.YahooConfig, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		logger:     log,
	}
}

// requestHeaders mimics a browser; Yahoo rejects the default Go user agent
var requestHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
	"Accept":     "application/json",
}

// FetchSnapshot pulls one ticker's fundamentals snapshot
func (c *Client) FetchSnapshot(ctx context.Context, ticker string) (contracts.RawSnapshot, error) {
	snap := contracts.RawSnapshot{Ticker: ticker}

	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		c.baseURL, url.PathEscape(ticker), url.QueryEscape(modules))

	resp, err := c.httpClient.GetWithHeaders(ctx, endpoint, requestHeaders)
	if err != nil {
		return snap, fmt.Errorf("fetch %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return snap, fmt.Errorf("fetch %s: status %d", ticker, resp.StatusCode)
	}

	var payload quoteSummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return snap, fmt.Errorf("decode %s: %w", ticker, err)
	}
	if payload.QuoteSummary.Error != nil {
		return snap, fmt.Errorf("fetch %s: %s", ticker, payload.QuoteSummary.Error.Description)
	}
	if len(payload.QuoteSummary.Result) == 0 {
		return snap, fmt.Errorf("fetch %s: empty result", ticker)
	}

	result := payload.QuoteSummary.Result[0]

	snap.Company = result.Price.ShortName
	if snap.Company == "" {
		snap.Company = result.Price.LongName
	}
	snap.Sector = result.AssetProfile.Sector
	snap.Currency = result.Price.Currency
	snap.Price = result.Price.RegularMarketPrice.Raw
	snap.MarketCap = result.Price.MarketCap.Raw
	snap.TrailingPE = result.SummaryDetail.TrailingPE.Raw
	snap.EPS = result.DefaultKeyStatistics.TrailingEps.Raw
	snap.EarningsGrowth = result.FinancialData.EarningsGrowth.Raw
	snap.PEGRatio = result.DefaultKeyStatistics.PegRatio.Raw
	snap.BookValue = result.DefaultKeyStatistics.BookValue.Raw
	snap.AnalystTarget = result.FinancialData.TargetMeanPrice.Raw

	return snap, nil
}

// FetchAll pulls snapshots for every ticker in order. A failed ticker yields
// a snapshot with only the symbol set so the row survives with missing
// fields; one bad security never aborts the batch.
func (c *Client) FetchAll(ctx context.Context, tickers []string) []contracts.RawSnapshot {
	snapshots := make([]contracts.RawSnapshot, 0, len(tickers))
	failures := 0

	for _, ticker := range tickers {
		if ctx.Err() != nil {
			break
		}
		snap, err := c.FetchSnapshot(ctx, ticker)
		if err != nil {
			failures++
			c.logger.WithError(err).WithField("ticker", ticker).Warn("Snapshot fetch failed")
		}
		snapshots = append(snapshots, snap)
	}

	c.logger.WithFields(map[string]interface{}{
		"tickers":  len(tickers),
		"fetched":  len(snapshots),
		"failures": failures,
	}).Info("Fetched fundamentals")

	return snapshots
}
