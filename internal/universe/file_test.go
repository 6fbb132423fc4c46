package universe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/hunter/pkg/config"
)

func TestFromFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "symbol header in first column",
			content: "symbol\nAAPL\nMSFT\n",
			want:    []string{"AAPL", "MSFT"},
		},
		{
			name:    "symbol header in later column",
			content: "company,symbol\nApple,AAPL\nMicrosoft,MSFT\n",
			want:    []string{"AAPL", "MSFT"},
		},
		{
			name:    "headerless single column",
			content: "NVDA\nAMD\n",
			want:    []string{"AMD", "NVDA"},
		},
		{
			name:    "duplicates and class shares normalized",
			content: "symbol\nbrk.b\nBRK-B\naapl\n",
			want:    []string{"AAPL", "BRK-B"},
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tickers.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			loader := testLoader(config.UniverseConfig{FallbackFile: path})
			tickers, err := loader.fromFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tickers)
		})
	}
}

func TestFromFile_MissingFileIsNotAnError(t *testing.T) {
	loader := testLoader(config.UniverseConfig{})
	tickers, err := loader.fromFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Nil(t, tickers)
}

func TestWriteFallback_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickers.csv")
	require.NoError(t, WriteFallback(path, []string{"AAPL", "GOOG", "MSFT"}))

	loader := testLoader(config.UniverseConfig{FallbackFile: path})
	tickers, err := loader.fromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "GOOG", "MSFT"}, tickers)
}
