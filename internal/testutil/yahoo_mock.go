package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ndewijer/FinLedge-Backend/internal/yahoo"
)

// MockYahooServer is a fake Yahoo Finance chart endpoint for testing.
// It serves a predefined response instead of calling the real API and counts requests.
type MockYahooServer struct {
	// MockResponse is the response served for every chart request
	MockResponse yahoo.Response
	// StatusCode is the HTTP status written before the body
	StatusCode int
	// Delay is slept before responding, used to trigger client timeouts
	Delay time.Duration

	queryCount atomic.Int64
	server     *httptest.Server
}

// NewMockYahooServer creates a mock Yahoo server with default test data.
// The default data includes 60 days of rising prices.
// The server is closed automatically when the test ends.
func NewMockYahooServer(t *testing.T) *MockYahooServer {
	t.Helper()

	m := &MockYahooServer{
		MockResponse: CreateMockYahooResponse(60, 100),
		StatusCode:   http.StatusOK,
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.server.Close)

	return m
}

func (m *MockYahooServer) handle(w http.ResponseWriter, r *http.Request) {
	m.queryCount.Add(1)
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-r.Context().Done():
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(m.StatusCode)
	//nolint:errcheck // Test server - a failed write surfaces as a client error
	json.NewEncoder(w).Encode(m.MockResponse)
}

// URL returns the base URL to pass to yahoo.NewFinanceClient.
func (m *MockYahooServer) URL() string {
	return m.server.URL
}

// QueryCount returns how many chart requests the server has received.
func (m *MockYahooServer) QueryCount() int {
	return int(m.queryCount.Load())
}

// WithError configures the server to answer with a Yahoo error object.
func (m *MockYahooServer) WithError(code, description string) *MockYahooServer {
	m.MockResponse = yahoo.Response{
		Chart: yahoo.Chart{
			Error: &yahoo.Error{Code: code, Description: description},
		},
	}
	m.StatusCode = http.StatusNotFound
	return m
}

// WithResponse configures the server to return the specified response.
func (m *MockYahooServer) WithResponse(resp yahoo.Response) *MockYahooServer {
	m.MockResponse = resp
	return m
}

// WithEmptyResponse configures the server to return an empty response (no data).
func (m *MockYahooServer) WithEmptyResponse() *MockYahooServer {
	m.MockResponse = yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{},
		},
	}
	return m
}

// WithDelay configures the server to wait before responding.
func (m *MockYahooServer) WithDelay(d time.Duration) *MockYahooServer {
	m.Delay = d
	return m
}

// CreateMockYahooResponse creates a mock Yahoo Finance API response with test data.
// The response includes `days` daily bars ending yesterday, starting at startPrice
// and rising by 1 each day.
func CreateMockYahooResponse(days int, startPrice float64) yahoo.Response {
	end := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -1)

	timestamps := make([]int64, days)
	closes := make([]*float64, days)
	volumes := make([]*int64, days)
	for i := 0; i < days; i++ {
		timestamps[i] = end.AddDate(0, 0, i-days+1).Unix()
		price := startPrice + float64(i)
		volume := int64(1_000_000 + i)
		closes[i] = &price
		volumes[i] = &volume
	}

	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{
				{
					Meta: yahoo.Meta{
						Currency:     "INR",
						Symbol:       "TEST.NS",
						ExchangeName: "NSI",
					},
					Timestamp: timestamps,
					Indicators: yahoo.Indicators{
						Quote: []yahoo.Quote{
							{
								Close:  closes,
								Volume: volumes,
							},
						},
					},
				},
			},
		},
	}
}
