package valuation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/hunter/internal/contracts"
)

func TestComputePEG(t *testing.T) {
	tests := []struct {
		name       string
		rec        contracts.SecurityRecord
		want       contracts.Float
		wantSource contracts.PEGSource
	}{
		{
			name: "reported peg used unmodified",
			rec: contracts.SecurityRecord{
				PEGRatio:       contracts.FloatFrom(1.7),
				TrailingPE:     contracts.FloatFrom(20),
				EarningsGrowth: contracts.FloatFrom(0.10),
			},
			want:       contracts.FloatFrom(1.7),
			wantSource: contracts.PEGReported,
		},
		{
			name: "derived from pe and fractional growth",
			rec: contracts.SecurityRecord{
				TrailingPE:     contracts.FloatFrom(20),
				EarningsGrowth: contracts.FloatFrom(0.10), // 10% -> divide by 10
			},
			want:       contracts.FloatFrom(2.0),
			wantSource: contracts.PEGDerived,
		},
		{
			name: "non-positive growth yields missing",
			rec: contracts.SecurityRecord{
				TrailingPE:     contracts.FloatFrom(20),
				EarningsGrowth: contracts.FloatFrom(-0.05),
			},
			want:       contracts.MissingFloat(),
			wantSource: contracts.PEGMissing,
		},
		{
			name: "missing growth yields missing",
			rec: contracts.SecurityRecord{
				TrailingPE: contracts.FloatFrom(20),
			},
			want:       contracts.MissingFloat(),
			wantSource: contracts.PEGMissing,
		},
		{
			name: "missing pe yields missing",
			rec: contracts.SecurityRecord{
				EarningsGrowth: contracts.FloatFrom(0.10),
			},
			want:       contracts.MissingFloat(),
			wantSource: contracts.PEGMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := ComputePEG(tt.rec)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestComputeGraham(t *testing.T) {
	// sqrt(22.5 * 5 * 20) = sqrt(2250)
	rec := contracts.SecurityRecord{
		EPS:       contracts.FloatFrom(5),
		BookValue: contracts.FloatFrom(20),
	}
	got := ComputeGraham(rec)
	require.True(t, got.Valid)
	assert.InDelta(t, math.Sqrt(2250), got.Value, 1e-12)
	assert.InDelta(t, 47.43, got.Value, 0.01)
}

func TestComputeGraham_NegativeProduct(t *testing.T) {
	tests := []struct {
		name string
		eps  contracts.Float
		book contracts.Float
		want bool
	}{
		{"negative eps positive book", contracts.FloatFrom(-5), contracts.FloatFrom(20), false},
		{"positive eps negative book", contracts.FloatFrom(5), contracts.FloatFrom(-20), false},
		{"both negative cancels", contracts.FloatFrom(-5), contracts.FloatFrom(-20), true},
		{"zero eps", contracts.FloatFrom(0), contracts.FloatFrom(20), true},
		{"missing eps", contracts.MissingFloat(), contracts.FloatFrom(20), false},
		{"missing book", contracts.FloatFrom(5), contracts.MissingFloat(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeGraham(contracts.SecurityRecord{EPS: tt.eps, BookValue: tt.book})
			assert.Equal(t, tt.want, got.Valid)
		})
	}
}
