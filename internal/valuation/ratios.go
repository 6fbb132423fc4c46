package valuation

import (
	"math"

	"github.com/wonny/hunter/internal/contracts"
)

// grahamMultiplier is Benjamin Graham's 22.5 heuristic (15x earnings × 1.5x
// book value).
const grahamMultiplier = 22.5

// ComputePEG returns the PEG ratio for a security. A reported PEG is used
// unmodified when present; otherwise it is derived from trailing P/E and
// earnings growth. The growth feed delivers a fraction (0.15 = 15%), so it is
// converted to a percentage to match the P/E scale before dividing.
func ComputePEG(rec contracts.SecurityRecord) (contracts.Float, contracts.PEGSource) {
	if rec.PEGRatio.Valid {
		return rec.PEGRatio, contracts.PEGReported
	}

	pe, peOK := rec.TrailingPE.Float64()
	growth, growthOK := rec.EarningsGrowth.Float64()
	if !peOK || !growthOK || growth <= 0 {
		return contracts.MissingFloat(), contracts.PEGMissing
	}

	growthPct := growth * 100
	return contracts.FloatFrom(pe / growthPct), contracts.PEGDerived
}

// ComputeGraham returns the Graham value sqrt(22.5 * eps * bvps). The value
// is missing when either operand is missing or when their product is
// negative; the square root of a negative number is never taken.
func ComputeGraham(rec contracts.SecurityRecord) contracts.Float {
	eps, epsOK := rec.EPS.Float64()
	book, bookOK := rec.BookValue.Float64()
	if !epsOK || !bookOK {
		return contracts.MissingFloat()
	}

	product := grahamMultiplier * eps * book
	if product < 0 {
		return contracts.MissingFloat()
	}

	return contracts.FloatFrom(math.Sqrt(product))
}
