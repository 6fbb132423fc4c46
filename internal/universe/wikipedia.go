package universe

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// tickerHeaders are the column names the constituents table is known to use
var tickerHeaders = map[string]bool{
	"ticker":        true,
	"ticker symbol": true,
	"symbol":        true,
}

// fromWikipedia scrapes the constituents table from the Wikipedia page.
// The page carries several wikitables; the one with a ticker/symbol column
// and a plausible row count wins.
func (l *Loader) fromWikipedia(ctx context.Context) ([]string, error) {
	resp, err := l.httpClient.Get(ctx, l.cfg.WikipediaURL)
	if err != nil {
		return nil, fmt.Errorf("fetch constituents page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("constituents page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse constituents page: %w", err)
	}

	var tickers []string
	doc.Find("table.wikitable").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		col := tickerColumn(table)
		if col < 0 {
			return true // keep looking
		}

		raw := make([]string, 0, 110)
		table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() > col {
				raw = append(raw, strings.TrimSpace(cells.Eq(col).Text()))
			}
		})

		candidates := sortedUnique(raw)
		if len(candidates) >= minPlausibleCount {
			tickers = candidates
			return false
		}
		return true
	})

	if len(tickers) == 0 {
		return nil, fmt.Errorf("no constituents table with >= %d symbols found", minPlausibleCount)
	}

	return tickers, nil
}

// tickerColumn returns the index of the ticker/symbol column, or -1
func tickerColumn(table *goquery.Selection) int {
	col := -1
	table.Find("tr").First().Find("th").Each(func(i int, th *goquery.Selection) {
		header := strings.ToLower(strings.TrimSpace(th.Text()))
		if col < 0 && tickerHeaders[header] {
			col = i
		}
	})
	return col
}
