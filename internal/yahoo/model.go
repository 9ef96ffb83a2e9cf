package yahoo

import "time"

// Response represents the raw JSON response structure from the Yahoo Finance chart API.
//
// The structure includes:
//   - Chart.Result: Array of result objects (typically contains one element)
//   - Chart.Result[].Meta: Symbol metadata (name, currency, exchange)
//   - Chart.Result[].Timestamp: Unix timestamps for each data point
//   - Chart.Result[].Indicators: Price data arrays (quote and adjusted close)
//   - Chart.Error: Optional error object from Yahoo API
//
// Yahoo emits null for bars without a trade, so all price arrays are pointers.
type Response struct {
	Chart Chart `json:"chart"`
}

// Chart is the top level "chart" object of a Yahoo response.
type Chart struct {
	Result []Result `json:"result"`
	Error  *Error   `json:"error"`
}

// Error is the error object Yahoo returns for unknown symbols or bad ranges.
type Error struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Result holds the series for one symbol.
type Result struct {
	Meta       Meta       `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

// Meta describes the symbol a Result belongs to.
type Meta struct {
	Currency           string  `json:"currency"`
	Symbol             string  `json:"symbol"`
	ExchangeName       string  `json:"exchangeName"`
	FullExchangeName   string  `json:"fullExchangeName"`
	LongName           string  `json:"longName"`
	Shortname          string  `json:"shortName"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
}

// Indicators groups the quote arrays and the optional adjusted close array.
type Indicators struct {
	Quote    []Quote    `json:"quote"`
	AdjClose []AdjClose `json:"adjclose"`
}

// Quote holds the OHLCV arrays, index-aligned with Result.Timestamp.
type Quote struct {
	Open   []*float64 `json:"open"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
}

// AdjClose holds split and dividend adjusted closes.
type AdjClose struct {
	AdjClose []*float64 `json:"adjclose"`
}

// PriceChart represents a parsed price chart from Yahoo Finance.
// This is the application's internal representation after parsing the raw Response.
// Bars with a missing or non-positive close are dropped during parsing.
type PriceChart struct {
	Currency     string `json:"currency"`
	Symbol       string `json:"symbol"`
	ExchangeName string `json:"exchangeName"`
	LongName     string `json:"longName"`
	Bars         []Bar  `json:"bars"`
}

// Bar represents a single trading day of a symbol.
//
// Fields:
//   - Date: Trading date (UTC)
//   - Close: Adjusted close when Yahoo supplies one, raw close otherwise
//   - Volume: Number of shares traded during the day, 0 when unknown
type Bar struct {
	Date   time.Time
	Close  float64
	Volume int64
}
