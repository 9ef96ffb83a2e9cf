package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
)

// DefaultBaseURL is the public Yahoo Finance chart endpoint.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// FinanceClient provides methods for fetching daily price history from the Yahoo Finance API.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewFinanceClient creates a new Yahoo Finance client.
// An empty baseURL selects DefaultBaseURL; tests point it at an httptest server.
// The timeout bounds a whole request including reading the body.
//
// Parameters:
//   - baseURL: Scheme and host of the chart API
//   - timeout: HTTP client timeout, 0 means no client-level timeout
//
// Returns:
//   - *FinanceClient: A new client instance ready for use
func NewFinanceClient(baseURL string, timeout time.Duration) *FinanceClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &FinanceClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// ParseChart converts a raw Yahoo Finance API response into a structured price chart.
//
// The method performs validation to ensure:
//   - A result is present
//   - Timestamp data is present
//   - Close price data is present and has the same length as the timestamps
//
// Null closes are skipped rather than treated as errors, since Yahoo emits them
// for holidays and halted sessions.
//
// Parameters:
//   - yahooResult: Raw response from Yahoo Finance API
//
// Returns:
//   - PriceChart: Structured chart with bars and metadata
//   - error: If data is missing, malformed, or arrays have mismatched lengths
func ParseChart(yahooResult Response) (PriceChart, error) {
	if len(yahooResult.Chart.Result) == 0 {
		return PriceChart{}, fmt.Errorf("%w: empty result", apperrors.ErrDataUnavailable)
	}
	result := yahooResult.Chart.Result[0]

	if len(result.Timestamp) == 0 {
		return PriceChart{}, fmt.Errorf("%w: no price data returned", apperrors.ErrDataUnavailable)
	}
	if len(result.Indicators.Quote) == 0 || len(result.Indicators.Quote[0].Close) == 0 {
		return PriceChart{}, fmt.Errorf("%w: no close prices returned", apperrors.ErrDataUnavailable)
	}

	quote := result.Indicators.Quote[0]
	if len(quote.Close) != len(result.Timestamp) {
		return PriceChart{}, fmt.Errorf("%w: mismatched data lengths", apperrors.ErrDataUnavailable)
	}

	var adj []*float64
	if len(result.Indicators.AdjClose) > 0 && len(result.Indicators.AdjClose[0].AdjClose) == len(result.Timestamp) {
		adj = result.Indicators.AdjClose[0].AdjClose
	}

	bars := make([]Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		closePtr := quote.Close[i]
		if adj != nil && adj[i] != nil {
			closePtr = adj[i]
		}
		if closePtr == nil || *closePtr <= 0 {
			continue
		}

		var volume int64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			volume = *quote.Volume[i]
		}

		bars = append(bars, Bar{
			Date:   time.Unix(ts, 0).UTC(),
			Close:  *closePtr,
			Volume: volume,
		})
	}

	return PriceChart{
		Currency:     result.Meta.Currency,
		Symbol:       result.Meta.Symbol,
		ExchangeName: result.Meta.ExchangeName,
		LongName:     result.Meta.LongName,
		Bars:         bars,
	}, nil
}

// RangeForDays picks the smallest Yahoo range keyword covering the given number of trading days.
func RangeForDays(days int) string {
	switch {
	case days <= 5:
		return "5d"
	case days <= 22:
		return "1mo"
	case days <= 66:
		return "3mo"
	case days <= 130:
		return "6mo"
	case days <= 252:
		return "1y"
	case days <= 504:
		return "2y"
	case days <= 1260:
		return "5y"
	default:
		return "max"
	}
}

// QuerySymbolByRange fetches daily price data for a symbol using a range keyword (e.g. "1y").
//
// Parameters:
//   - ctx: Request context, cancellation aborts the HTTP call
//   - symbol: Stock ticker symbol (e.g., "RELIANCE.NS", "AAPL")
//   - rng: Yahoo range keyword, see RangeForDays
//
// Returns:
//   - Response: Raw API response containing price data
//   - error: If the HTTP request fails, API returns an error, or no results found
func (c *FinanceClient) QuerySymbolByRange(ctx context.Context, symbol, rng string) (Response, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s", c.baseURL, url.PathEscape(symbol), rng)
	result, err := c.queryYahoo(ctx, u)
	if err != nil {
		return Response{}, err
	}
	if len(result.Chart.Result) == 0 {
		return Response{}, fmt.Errorf("%w: %s", apperrors.ErrSymbolNotFound, symbol)
	}

	return result, nil
}

// queryYahoo executes an HTTP request against the Yahoo Finance API.
//
// The method sets required headers:
//   - User-Agent: Mimics a browser to avoid API blocking
//   - Accept: Requests JSON response format
func (c *FinanceClient) queryYahoo(ctx context.Context, u string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, fmt.Errorf("decode yahoo response (status %d): %w", resp.StatusCode, err)
	}

	if response.Chart.Error != nil {
		return response, fmt.Errorf("yahoo error: %s: %s", response.Chart.Error.Code, response.Chart.Error.Description)
	}
	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("yahoo returned status %d", resp.StatusCode)
	}

	return response, nil
}
