package yahoo

// Value is the raw/fmt envelope Yahoo wraps numeric fields in.
// A nil *Value means the field was absent from the response.
type Value struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

// Float returns the raw numeric value, or nil when the field or its
// raw component is absent.
func (v *Value) Float() *float64 {
	if v == nil {
		return nil
	}
	return v.Raw
}

// Int64 returns the raw value truncated to int64, or nil when absent.
func (v *Value) Int64() *int64 {
	if v == nil || v.Raw == nil {
		return nil
	}
	n := int64(*v.Raw)
	return &n
}

// AssetProfile is the quoteSummary assetProfile module.
type AssetProfile struct {
	Sector   string `json:"sector"`
	Industry string `json:"industry"`
}

// PriceModule is the quoteSummary price module.
type PriceModule struct {
	LongName  string `json:"longName"`
	ShortName string `json:"shortName"`
	MarketCap *Value `json:"marketCap"`
}

// SummaryDetail is the quoteSummary summaryDetail module.
type SummaryDetail struct {
	PreviousClose *Value `json:"previousClose"`
	TrailingPE    *Value `json:"trailingPE"`
	ForwardPE     *Value `json:"forwardPE"`
	MarketCap     *Value `json:"marketCap"`
}

// DefaultKeyStatistics is the quoteSummary defaultKeyStatistics module.
type DefaultKeyStatistics struct {
	PriceToBook *Value `json:"priceToBook"`
	ForwardPE   *Value `json:"forwardPE"`
}

// QuoteSummaryResult bundles the modules requested for one symbol.
type QuoteSummaryResult struct {
	AssetProfile         *AssetProfile         `json:"assetProfile"`
	Price                *PriceModule          `json:"price"`
	SummaryDetail        *SummaryDetail        `json:"summaryDetail"`
	DefaultKeyStatistics *DefaultKeyStatistics `json:"defaultKeyStatistics"`
}

// QuoteSummaryResponse is the top-level quoteSummary envelope.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummaryResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// ChartQuote holds the OHLCV arrays for one chart result. Entries are
// pointers because Yahoo emits JSON null for bars with no trade data.
type ChartQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

// ChartResult is one symbol's chart data.
type ChartResult struct {
	Meta struct {
		Symbol   string `json:"symbol"`
		Currency string `json:"currency"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []ChartQuote `json:"quote"`
	} `json:"indicators"`
}

// ChartResponse is the top-level chart envelope.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}
