package strategy

import (
	"fmt"
	"math"
)

// ValidationError is a fatal configuration failure. A run never starts with
// an invalid strategy; the engine does not substitute defaults.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks all required constraints
func Validate(cfg *Config) error {
	if cfg.Meta.StrategyID == "" {
		return ValidationError{"meta.strategy_id", "required"}
	}

	t := cfg.Thresholds

	finiteChecks := []struct {
		field string
		value float64
	}{
		{"thresholds.peg_max", t.PEGMax},
		{"thresholds.pe_sector_max_mult", t.PESectorMaxMult},
		{"thresholds.margin_of_safety_min", t.MarginOfSafetyMin},
		{"thresholds.undervalued_threshold", t.UndervaluedThreshold},
		{"thresholds.overvalued_threshold", t.OvervaluedThreshold},
	}
	for _, c := range finiteChecks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return ValidationError{c.field, "must be a finite number"}
		}
	}

	if t.PEGMax <= 0 {
		return ValidationError{"thresholds.peg_max", "must be > 0"}
	}
	if t.PESectorMaxMult <= 0 {
		return ValidationError{"thresholds.pe_sector_max_mult", "must be > 0"}
	}
	if t.UndervaluedThreshold > 0 {
		return ValidationError{"thresholds.undervalued_threshold", "must be <= 0"}
	}
	if t.OvervaluedThreshold < 0 {
		return ValidationError{"thresholds.overvalued_threshold", "must be >= 0"}
	}
	if t.UndervaluedThreshold >= t.OvervaluedThreshold {
		return ValidationError{"thresholds", "undervalued_threshold must be < overvalued_threshold"}
	}

	return nil
}
