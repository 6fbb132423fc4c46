package yahoo

// value is Yahoo's wrapped numeric: {"raw": 187.3, "fmt": "187.30"}. Raw
// stays untyped; the cleansing stage owns coercion of provider values.
type value struct {
	Raw any    `json:"raw"`
	Fmt string `json:"fmt"`
}

// quoteSummaryResponse is the subset of the quoteSummary payload the
// pipeline consumes.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *apiError            `json:"error"`
	} `json:"quoteSummary"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type quoteSummaryResult struct {
	AssetProfile struct {
		Sector string `json:"sector"`
	} `json:"assetProfile"`

	Price struct {
		ShortName          string `json:"shortName"`
		LongName           string `json:"longName"`
		Currency           string `json:"currency"`
		RegularMarketPrice value  `json:"regularMarketPrice"`
		MarketCap          value  `json:"marketCap"`
	} `json:"price"`

	SummaryDetail struct {
		TrailingPE value `json:"trailingPE"`
	} `json:"summaryDetail"`

	DefaultKeyStatistics struct {
		TrailingEps value `json:"trailingEps"`
		PegRatio    value `json:"pegRatio"`
		BookValue   value `json:"bookValue"`
	} `json:"defaultKeyStatistics"`

	FinancialData struct {
		EarningsGrowth  value `json:"earningsGrowth"`
		TargetMeanPrice value `json:"targetMeanPrice"`
	} `json:"financialData"`
}
