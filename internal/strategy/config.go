package strategy

// Config is the full valuation strategy configuration
type Config struct {
	Meta       Meta       `yaml:"meta" json:"meta"`
	Thresholds Thresholds `yaml:"thresholds" json:"thresholds"`
}

// Meta identifies the strategy revision
type Meta struct {
	StrategyID string `yaml:"strategy_id" json:"strategy_id"`
	Version    string `yaml:"version" json:"version"`
}

// Thresholds are the run-level classification bounds. They are passed into
// the valuation engine as an immutable value; nothing reads them from
// ambient state.
type Thresholds struct {
	// PEGMax is the exclusive upper bound for peg_pass
	PEGMax float64 `yaml:"peg_max" json:"peg_max"`

	// PESectorMaxMult multiplies the applicable sector median P/E to form
	// the pe_vs_sector_pass ceiling
	PESectorMaxMult float64 `yaml:"pe_sector_max_mult" json:"pe_sector_max_mult"`

	// MarginOfSafetyMin is the exclusive lower bound for margin_of_safety_pass
	MarginOfSafetyMin float64 `yaml:"margin_of_safety_min" json:"margin_of_safety_min"`

	// UndervaluedThreshold bounds (price - fair) / fair from below; zero or
	// negative, e.g. -0.10 means price at least 10% under fair value
	UndervaluedThreshold float64 `yaml:"undervalued_threshold" json:"undervalued_threshold"`

	// OvervaluedThreshold bounds (price - fair) / fair from above; zero or
	// positive, e.g. 0.10 means price at least 10% over fair value
	OvervaluedThreshold float64 `yaml:"overvalued_threshold" json:"overvalued_threshold"`
}

// Default returns the stock strategy configuration
func Default() *Config {
	return &Config{
		Meta: Meta{
			StrategyID: "nasdaq100_value_hunter",
			Version:    "1",
		},
		Thresholds: Thresholds{
			PEGMax:               1.0,
			PESectorMaxMult:      1.0,
			MarginOfSafetyMin:    0.0,
			UndervaluedThreshold: -0.10,
			OvervaluedThreshold:  0.10,
		},
	}
}
