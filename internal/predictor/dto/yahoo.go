package dto

// YahooChartResponse is the top-level payload of the Yahoo Finance v8 chart
// endpoint.
type YahooChartResponse struct {
	Chart YahooChart `json:"chart"`
}

// YahooChart holds the chart results and error, if any.
type YahooChart struct {
	Result []YahooChartResult `json:"result"`
	Error  interface{}        `json:"error"`
}

// YahooChartResult is one symbol's chart data.
type YahooChartResult struct {
	Timestamp  []int64         `json:"timestamp"`
	Indicators YahooIndicators `json:"indicators"`
}

// YahooIndicators wraps the quote series.
type YahooIndicators struct {
	Quote []YahooQuote `json:"quote"`
}

// YahooQuote holds the parallel OHLCV arrays. Entries may be null for
// sessions the exchange reported no trade data.
type YahooQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}
