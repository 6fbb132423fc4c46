package universe

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// fromFile loads tickers from a local CSV list. The symbol column is found
// by header name; a headerless single-column file works too.
func (l *Loader) fromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := 0
	start := 0
	for i, header := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(header), "symbol") {
			col = i
			start = 1
			break
		}
	}

	raw := make([]string, 0, len(rows))
	for _, row := range rows[start:] {
		if len(row) > col {
			raw = append(raw, row[col])
		}
	}

	return sortedUnique(raw), nil
}

// WriteFallback rewrites the local constituents list, used by the
// `tickers refresh` command to keep the fallback current.
func WriteFallback(path string, tickers []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"symbol"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, ticker := range tickers {
		if err := writer.Write([]string{ticker}); err != nil {
			return fmt.Errorf("write %s: %w", ticker, err)
		}
	}
	writer.Flush()

	return writer.Error()
}

// Refresh scrapes the current constituents and rewrites the fallback file
func (l *Loader) Refresh(ctx context.Context) (int, error) {
	tickers, err := l.fromWikipedia(ctx)
	if err != nil {
		return 0, err
	}
	if err := WriteFallback(l.cfg.FallbackFile, tickers); err != nil {
		return 0, err
	}
	l.logger.WithFields(map[string]interface{}{
		"count": len(tickers),
		"file":  l.cfg.FallbackFile,
	}).Info("Refreshed fallback ticker list")
	return len(tickers), nil
}
