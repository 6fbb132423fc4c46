package contracts

// Check is the outcome of a single missing-safe screening criterion.
type Check string

const (
	CheckPass    Check = "pass"
	CheckFail    Check = "fail"
	CheckUnknown Check = "unknown"
)

// CheckOf normalizes a criterion into pass/fail/unknown. valid reports
// whether every operand of the criterion was present.
func CheckOf(valid, condition bool) Check {
	if !valid {
		return CheckUnknown
	}
	if condition {
		return CheckPass
	}
	return CheckFail
}

// Verdict is the combined valuation-hunter screen result.
type Verdict string

const (
	VerdictPass    Verdict = "pass"
	VerdictFail    Verdict = "fail"
	VerdictUnknown Verdict = "unknown"
)

// Tier classifies price against the resolved fair value.
type Tier string

const (
	TierUndervalued Tier = "undervalued"
	TierOvervalued  Tier = "overvalued"
	TierFair        Tier = "fair"
	TierUnknown     Tier = "unknown"
)

// FairValueSource names the rule that produced the fair value estimate.
type FairValueSource string

const (
	SourceGraham        FairValueSource = "graham"
	SourceAnalystTarget FairValueSource = "analyst_target"
	SourceSectorPE      FairValueSource = "sector_pe"
	SourceNone          FairValueSource = "none"
)

// PEGSource names how the PEG ratio was obtained.
type PEGSource string

const (
	PEGReported PEGSource = "reported"
	PEGDerived  PEGSource = "derived"
	PEGMissing  PEGSource = "missing"
)

// RawSnapshot is one per-ticker row as delivered by the fundamentals
// provider. Numeric fields are untyped on purpose: providers deliver numbers,
// quoted numbers, or nothing, and the cleansing stage owns coercion.
type RawSnapshot struct {
	Ticker         string
	Company        string
	Sector         string
	Currency       string
	Price          any
	MarketCap      any
	TrailingPE     any
	EPS            any
	EarningsGrowth any
	PEGRatio       any
	BookValue      any
	AnalystTarget  any
}

// SecurityRecord is a cleansed row: tickers normalized, every numeric field
// either finite or explicitly missing, sector never empty.
type SecurityRecord struct {
	Ticker         string `json:"ticker"`
	Company        string `json:"company"`
	Sector         string `json:"sector"`
	Currency       string `json:"currency"`
	Price          Float  `json:"price"`
	MarketCap      Float  `json:"market_cap"`
	TrailingPE     Float  `json:"trailing_pe"`
	EPS            Float  `json:"eps"`
	EarningsGrowth Float  `json:"earnings_growth"`
	PEGRatio       Float  `json:"peg_reported"`
	BookValue      Float  `json:"book_value_per_share"`
	AnalystTarget  Float  `json:"analyst_target_mean_price"`
}

// DerivedFields holds everything the valuation engine computes for one
// security.
type DerivedFields struct {
	PEG                Float           `json:"peg"`
	PEGSource          PEGSource       `json:"peg_source"`
	GrahamValue        Float           `json:"graham_value"`
	SectorMedianPE     Float           `json:"sector_median_pe"`
	PEMedianUsed       Float           `json:"pe_median_used"`
	FairValue          Float           `json:"fair_value"`
	FairValueSource    FairValueSource `json:"fair_value_source"`
	MarginOfSafety     Float           `json:"margin_of_safety"`
	PctDiff            Float           `json:"pct_diff"`
	PEGPass            Check           `json:"peg_pass"`
	PEVsSectorPass     Check           `json:"pe_vs_sector_pass"`
	MarginOfSafetyPass Check           `json:"margin_of_safety_pass"`
	ValuationHunter    Verdict         `json:"valuation_hunter"`
	Valuation          Tier            `json:"valuation"`
}

// ReportRow is the final merged output row, one per surviving ticker.
type ReportRow struct {
	SecurityRecord
	DerivedFields
}
