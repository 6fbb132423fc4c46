package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/hunter/internal/contracts"
)

func TestStore_EmptyBeforeFirstRun(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.Latest())
	assert.Nil(t, s.Summarize())
}

func TestStore_SetReplacesLatest(t *testing.T) {
	s := NewStore()
	first := sampleReport()
	s.Set(first)
	assert.Same(t, first, s.Latest())

	second := sampleReport()
	second.AsOfDate = "2026-09-01"
	s.Set(second)
	assert.Same(t, second, s.Latest())
}

func TestStore_Summarize(t *testing.T) {
	s := NewStore()
	s.Set(sampleReport())

	summary := s.Summarize()
	require.NotNil(t, summary)
	assert.Equal(t, "2026-08-31", summary.AsOfDate)
	assert.Equal(t, 2, summary.Securities)
	assert.Equal(t, 2, summary.Hunter[contracts.VerdictUnknown])
	assert.Equal(t, 1, summary.Valuation[contracts.TierFair])
	assert.Equal(t, 1, summary.Valuation[contracts.TierUnknown])
}
