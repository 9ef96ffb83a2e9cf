// Package aif recommends alternative investment funds from a static catalog
// and splits an investment across asset classes by risk profile and age.
package aif

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Fund is one catalog entry.
type Fund struct {
	Name              string  `yaml:"name" json:"name"`
	Category          string  `yaml:"category" json:"category"`
	HistoricReturn    float64 `yaml:"historicReturn" json:"historicReturn"`
	Volatility        float64 `yaml:"volatility" json:"volatility"`
	MinInvestment     float64 `yaml:"minInvestment" json:"minInvestment"`
	LockInPeriod      int     `yaml:"lockInPeriod" json:"lockInPeriod"` // months
	SharpeRatio       float64 `yaml:"sharpeRatio" json:"sharpeRatio"`
	RiskScore         int     `yaml:"riskScore" json:"riskScore"` // 1-10
	FocusArea         string  `yaml:"focusArea" json:"focusArea"`
	AUMCrores         float64 `yaml:"aumCrores" json:"aumCrores"`
	ManagerExperience int     `yaml:"managerExperience" json:"managerExperience"`
	AssetClass        string  `yaml:"assetClass" json:"assetClass"`
}

// MarketConditions are the macro figures quoted alongside a recommendation.
type MarketConditions struct {
	Inflation      float64 `yaml:"inflation" json:"inflation"`
	GSecYield      float64 `yaml:"gsecYield" json:"gsecYield"`
	GDPGrowth      float64 `yaml:"gdpGrowth" json:"gdpGrowth"`
	Nifty1YrReturn float64 `yaml:"nifty1YrReturn" json:"nifty1YrReturn"`
	Gold1YrReturn  float64 `yaml:"gold1YrReturn" json:"gold1YrReturn"`
}

// Catalog is the read-only fund table plus the advisory text shipped with it.
type Catalog struct {
	Funds            []Fund              `yaml:"funds"`
	MarketConditions MarketConditions    `yaml:"marketConditions"`
	Guidance         map[string][]string `yaml:"guidance"` // keyed by risk profile
	Notes            []string            `yaml:"notes"`
}

// ParseCatalog decodes a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse aif catalog: %w", err)
	}
	if len(c.Funds) == 0 {
		return nil, fmt.Errorf("aif catalog has no funds")
	}
	for i, f := range c.Funds {
		if f.Name == "" {
			return nil, fmt.Errorf("aif catalog: fund %d has no name", i)
		}
		if f.RiskScore < 1 || f.RiskScore > 10 {
			return nil, fmt.Errorf("aif catalog: %s risk score %d outside 1-10", f.Name, f.RiskScore)
		}
	}
	return &c, nil
}

// LoadCatalog reads the catalog from path, or the embedded catalog when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog(defaultCatalogYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read aif catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}
