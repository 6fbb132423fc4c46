package valuation

import (
	"github.com/wonny/hunter/internal/contracts"
	"github.com/wonny/hunter/internal/strategy"
)

// Classifier applies threshold rules to derived metrics
// SSOT: pass/fail/unknown decisions are made here and nowhere else
type Classifier struct {
	thresholds strategy.Thresholds
}

// NewClassifier creates a classifier for one run's thresholds
func NewClassifier(thresholds strategy.Thresholds) *Classifier {
	return &Classifier{thresholds: thresholds}
}

// MarginOfSafety computes (graham - price) / graham. Defined from the Graham
// value specifically, independent of the resolved fair value. Missing when
// either operand is missing or the Graham value is zero.
func (c *Classifier) MarginOfSafety(price, graham contracts.Float) contracts.Float {
	p, priceOK := price.Float64()
	g, grahamOK := graham.Float64()
	if !priceOK || !grahamOK || g == 0 {
		return contracts.MissingFloat()
	}
	return contracts.FloatFrom((g - p) / g)
}

// PEGPass checks peg < PEG_MAX; unknown when peg is missing
func (c *Classifier) PEGPass(peg contracts.Float) contracts.Check {
	return contracts.CheckOf(peg.Valid, peg.Value < c.thresholds.PEGMax)
}

// PEVsSectorPass checks trailing_pe <= median_pe * PE_SECTOR_MAX_MULT;
// unknown when either operand is missing
func (c *Classifier) PEVsSectorPass(trailingPE, medianPE contracts.Float) contracts.Check {
	valid := trailingPE.Valid && medianPE.Valid
	return contracts.CheckOf(valid, trailingPE.Value <= medianPE.Value*c.thresholds.PESectorMaxMult)
}

// MarginOfSafetyPass checks margin_of_safety > MARGIN_OF_SAFETY_MIN; unknown
// when the margin is missing
func (c *Classifier) MarginOfSafetyPass(mos contracts.Float) contracts.Check {
	return contracts.CheckOf(mos.Valid, mos.Value > c.thresholds.MarginOfSafetyMin)
}

// HunterVerdict combines the three sub-checks. Missing data is never treated
// as failing: any unknown sub-check makes the whole verdict unknown.
func (c *Classifier) HunterVerdict(checks ...contracts.Check) contracts.Verdict {
	allPass := true
	for _, check := range checks {
		if check == contracts.CheckUnknown {
			return contracts.VerdictUnknown
		}
		if check != contracts.CheckPass {
			allPass = false
		}
	}
	if allPass {
		return contracts.VerdictPass
	}
	return contracts.VerdictFail
}

// PctDiff computes (price - fair_value) / fair_value, the signed premium of
// price over the resolved fair value. Missing when either operand is missing
// or the fair value is zero.
func (c *Classifier) PctDiff(price, fairValue contracts.Float) contracts.Float {
	p, priceOK := price.Float64()
	fv, fairOK := fairValue.Float64()
	if !priceOK || !fairOK || fv == 0 {
		return contracts.MissingFloat()
	}
	return contracts.FloatFrom((p - fv) / fv)
}

// Tier buckets the price premium: at or below the undervalued bound means
// the price sits under fair value by the configured margin.
func (c *Classifier) Tier(pctDiff contracts.Float) contracts.Tier {
	diff, ok := pctDiff.Float64()
	if !ok {
		return contracts.TierUnknown
	}
	switch {
	case diff <= c.thresholds.UndervaluedThreshold:
		return contracts.TierUndervalued
	case diff >= c.thresholds.OvervaluedThreshold:
		return contracts.TierOvervalued
	default:
		return contracts.TierFair
	}
}
