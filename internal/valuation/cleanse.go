package valuation

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/wonny/hunter/internal/contracts"
	"github.com/wonny/hunter/pkg/logger"
)

// UnknownSector is the sentinel used when the provider has no sector.
const UnknownSector = "Unknown"

// Normalizer repairs raw provider rows into well-typed, bounded records.
// SSOT: all raw-field coercion happens here
type Normalizer struct {
	logger *logger.Logger
}

// NewNormalizer creates a new normalizer
func NewNormalizer(log *logger.Logger) *Normalizer {
	return &Normalizer{logger: log}
}

// Cleanse normalizes tickers, coerces every numeric field, and deduplicates
// by ticker (first occurrence wins, input order preserved). Rows are never
// dropped for missing fundamentals; a field that cannot be parsed becomes
// missing, never an error.
func (n *Normalizer) Cleanse(raw []contracts.RawSnapshot) []contracts.SecurityRecord {
	records := make([]contracts.SecurityRecord, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	duplicates := 0

	for _, snap := range raw {
		ticker := NormalizeTicker(snap.Ticker)
		if ticker == "" {
			n.logger.Warn("Dropping row with empty ticker")
			continue
		}
		if seen[ticker] {
			duplicates++
			continue
		}
		seen[ticker] = true

		rec := contracts.SecurityRecord{
			Ticker:         ticker,
			Company:        strings.TrimSpace(snap.Company),
			Sector:         normalizeSector(snap.Sector),
			Currency:       strings.TrimSpace(snap.Currency),
			Price:          coerceFloat(snap.Price),
			MarketCap:      coerceFloat(snap.MarketCap),
			TrailingPE:     coerceFloat(snap.TrailingPE),
			EPS:            coerceFloat(snap.EPS),
			EarningsGrowth: coerceFloat(snap.EarningsGrowth),
			PEGRatio:       coerceFloat(snap.PEGRatio),
			BookValue:      coerceFloat(snap.BookValue),
			AnalystTarget:  coerceFloat(snap.AnalystTarget),
		}

		// Non-positive prices and market caps are not valid values
		if rec.Price.Valid && rec.Price.Value <= 0 {
			rec.Price = contracts.MissingFloat()
		}
		if rec.MarketCap.Valid && rec.MarketCap.Value <= 0 {
			rec.MarketCap = contracts.MissingFloat()
		}

		records = append(records, rec)
	}

	n.logger.WithFields(map[string]interface{}{
		"input":      len(raw),
		"output":     len(records),
		"duplicates": duplicates,
	}).Info("Cleansed fundamentals")

	return records
}

// NormalizeTicker converts a raw symbol to the exchange-feed convention:
// trimmed, uppercased, '.' replaced with '-' (BRK.B -> BRK-B).
func NormalizeTicker(raw string) string {
	ticker := strings.ToUpper(strings.TrimSpace(raw))
	return strings.ReplaceAll(ticker, ".", "-")
}

// normalizeSector maps empty or missing sectors to the Unknown sentinel
func normalizeSector(raw string) string {
	sector := strings.TrimSpace(raw)
	if sector == "" {
		return UnknownSector
	}
	return sector
}

// coerceFloat converts any raw provider value to an optional float. Values
// that cannot be parsed become missing; infinities are never retained
// (contracts.FloatFrom collapses NaN and ±Inf).
func coerceFloat(v any) contracts.Float {
	switch value := v.(type) {
	case nil:
		return contracts.MissingFloat()
	case float64:
		return contracts.FloatFrom(value)
	case float32:
		return contracts.FloatFrom(float64(value))
	case int:
		return contracts.FloatFrom(float64(value))
	case int64:
		return contracts.FloatFrom(float64(value))
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return contracts.MissingFloat()
		}
		return contracts.FloatFrom(f)
	case string:
		s := strings.TrimSpace(value)
		if s == "" {
			return contracts.MissingFloat()
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return contracts.MissingFloat()
		}
		return contracts.FloatFrom(f)
	case contracts.Float:
		return value
	default:
		return contracts.MissingFloat()
	}
}
