package valuation

import (
	"github.com/wonny/hunter/internal/contracts"
)

// fairValueRule is one tier of the fair value fallback chain. resolve
// returns missing when the tier's inputs are unavailable.
type fairValueRule struct {
	source  contracts.FairValueSource
	resolve func(rec contracts.SecurityRecord, graham contracts.Float, stats *SectorStats) contracts.Float
}

// fairValueRules is evaluated per security in strict order, stopping at the
// first rule that produces a value. Adding or reordering tiers means editing
// this list, nothing else.
var fairValueRules = []fairValueRule{
	{
		source: contracts.SourceGraham,
		resolve: func(_ contracts.SecurityRecord, graham contracts.Float, _ *SectorStats) contracts.Float {
			return graham
		},
	},
	{
		source: contracts.SourceAnalystTarget,
		resolve: func(rec contracts.SecurityRecord, _ contracts.Float, _ *SectorStats) contracts.Float {
			return rec.AnalystTarget
		},
	},
	{
		source: contracts.SourceSectorPE,
		resolve: func(rec contracts.SecurityRecord, _ contracts.Float, stats *SectorStats) contracts.Float {
			eps, epsOK := rec.EPS.Float64()
			pe, peOK := stats.MedianFor(rec.Sector).Float64()
			if !epsOK || !peOK {
				return contracts.MissingFloat()
			}
			return contracts.FloatFrom(eps * pe)
		},
	},
}

// ResolveFairValue picks one fair value estimate per security. The chain is
// total: every security ends with either an estimate or an explicit
// SourceNone.
func ResolveFairValue(rec contracts.SecurityRecord, graham contracts.Float, stats *SectorStats) (contracts.Float, contracts.FairValueSource) {
	for _, rule := range fairValueRules {
		if value := rule.resolve(rec, graham, stats); value.Valid {
			return value, rule.source
		}
	}
	return contracts.MissingFloat(), contracts.SourceNone
}
