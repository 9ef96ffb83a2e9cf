package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tickers.yaml
var defaultTickersYAML []byte

// TickerProfile holds the simulation parameters of a single ticker.
// Keys missing from a ticker entry are filled from the table defaults when
// the table is loaded.
type TickerProfile struct {
	Name                string  `yaml:"name"`
	BasePrice           float64 `yaml:"basePrice"`
	Volatility          float64 `yaml:"volatility"`
	Trend               float64 `yaml:"trend"`
	SentimentBias       float64 `yaml:"sentimentBias"`
	SentimentVolatility float64 `yaml:"sentimentVolatility"`
}

// TickerTable maps ticker symbols to their simulation profile.
// Lookups are case-insensitive; unknown tickers receive Defaults.
type TickerTable struct {
	Defaults TickerProfile            `yaml:"defaults"`
	Tickers  map[string]TickerProfile `yaml:"tickers"`
}

// Profile returns the profile for ticker, falling back to the table defaults.
func (t *TickerTable) Profile(ticker string) TickerProfile {
	if p, ok := t.Tickers[strings.ToUpper(strings.TrimSpace(ticker))]; ok {
		return p
	}
	return t.Defaults
}

// Known reports whether ticker has an explicit entry.
func (t *TickerTable) Known(ticker string) bool {
	_, ok := t.Tickers[strings.ToUpper(strings.TrimSpace(ticker))]
	return ok
}

// ParseTickerTable decodes a YAML ticker table. Each ticker starts from a
// copy of the defaults, so only keys present in its entry override them and
// an explicit zero is kept.
func ParseTickerTable(data []byte) (*TickerTable, error) {
	var raw struct {
		Defaults TickerProfile        `yaml:"defaults"`
		Tickers  map[string]yaml.Node `yaml:"tickers"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ticker table: %w", err)
	}

	if raw.Defaults.BasePrice <= 0 {
		return nil, fmt.Errorf("ticker table defaults: basePrice must be positive")
	}
	if raw.Defaults.Name == "" {
		raw.Defaults.Name = "Company"
	}

	table := &TickerTable{
		Defaults: raw.Defaults,
		Tickers:  make(map[string]TickerProfile, len(raw.Tickers)),
	}
	for symbol, node := range raw.Tickers {
		p := raw.Defaults
		if err := node.Decode(&p); err != nil {
			return nil, fmt.Errorf("parse ticker %s: %w", symbol, err)
		}
		if p.BasePrice <= 0 {
			return nil, fmt.Errorf("ticker %s: basePrice must be positive", symbol)
		}
		if p.Volatility < 0 || p.SentimentVolatility < 0 {
			return nil, fmt.Errorf("ticker %s: volatility must not be negative", symbol)
		}
		table.Tickers[strings.ToUpper(symbol)] = p
	}

	return table, nil
}

// LoadTickerTable reads the ticker table from path, or the embedded table when path is empty.
func LoadTickerTable(path string) (*TickerTable, error) {
	if path == "" {
		return ParseTickerTable(defaultTickersYAML)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ticker table %s: %w", path, err)
	}
	return ParseTickerTable(data)
}
