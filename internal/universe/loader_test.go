package universe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/hunter/pkg/config"
	"github.com/wonny/hunter/pkg/httputil"
	"github.com/wonny/hunter/pkg/logger"
)

func testLoader(cfg config.UniverseConfig) *Loader {
	log := logger.NewWriter(io.Discard)
	return NewLoader(cfg, httputil.New(log).DisableRetry(), log)
}

// constituentsPage renders a Wikipedia-shaped page: a small non-constituents
// wikitable first, then the real one with n symbols.
func constituentsPage(n int) string {
	var b strings.Builder
	b.WriteString(`<html><body>`)
	b.WriteString(`<table class="wikitable"><tr><th>Date</th><th>Change</th></tr>`)
	b.WriteString(`<tr><td>2026-01-01</td><td>Added XYZ</td></tr></table>`)
	b.WriteString(`<table class="wikitable"><tbody><tr><th>Company</th><th>Ticker</th><th>Sector</th></tr>`)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `<tr><td>Company %d</td><td>sym%03d</td><td>Tech</td></tr>`, i, i)
	}
	b.WriteString(`</tbody></table></body></html>`)
	return b.String()
}

func TestLoad_FromWikipedia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, constituentsPage(101))
	}))
	defer srv.Close()

	loader := testLoader(config.UniverseConfig{
		UseWikipedia: true,
		WikipediaURL: srv.URL,
	})

	tickers, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, tickers, 101)
	assert.Equal(t, "SYM000", tickers[0])
	assert.True(t, isSortedAscending(tickers))
}

func isSortedAscending(tickers []string) bool {
	for i := 1; i < len(tickers); i++ {
		if tickers[i-1] > tickers[i] {
			return false
		}
	}
	return true
}

func TestLoad_RejectsImplausiblySmallTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, constituentsPage(10))
	}))
	defer srv.Close()

	fallback := filepath.Join(t.TempDir(), "missing.csv")
	loader := testLoader(config.UniverseConfig{
		UseWikipedia: true,
		WikipediaURL: srv.URL,
		FallbackFile: fallback,
	})

	_, err := loader.Load(context.Background())
	require.Error(t, err)
}

func TestLoad_FallsBackToFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	fallback := filepath.Join(t.TempDir(), "tickers.csv")
	require.NoError(t, os.WriteFile(fallback, []byte("symbol\naapl\nmsft\nbrk.b\n"), 0o644))

	loader := testLoader(config.UniverseConfig{
		UseWikipedia: true,
		WikipediaURL: srv.URL,
		FallbackFile: fallback,
	})

	tickers, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "BRK-B", "MSFT"}, tickers)
}
