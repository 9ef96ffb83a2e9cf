package model

// VaRResponse is the result of a portfolio Value-at-Risk analysis.
// RiskContribution maps each ticker to its percentage contribution.
type VaRResponse struct {
	PortfolioDetails  PortfolioDetails      `json:"portfolioDetails"`
	VaRMetrics        VaRMetrics            `json:"varMetrics"`
	PortfolioMetrics  PortfolioMetrics      `json:"portfolioMetrics"`
	RiskContribution  map[string]string     `json:"riskContribution"`
	StressTestResults map[string]StressTest `json:"stressTestResults"`
	CalculationInfo   CalculationInfo       `json:"calculationInfo"`
}

// PortfolioDetails echoes the normalized portfolio.
type PortfolioDetails struct {
	Tickers         []string          `json:"tickers"`
	Weights         map[string]string `json:"weights"`
	InvestmentValue string            `json:"investmentValue"`
	ConfidenceLevel string            `json:"confidenceLevel"`
	DataPoints      int               `json:"dataPoints"`
	DataSources     map[string]string `json:"dataSources"`
}

// VaRMetrics holds the loss estimates in the investment currency.
type VaRMetrics struct {
	HistoricalVaR   string `json:"historicalVaR"`
	ParametricVaR   string `json:"parametricVaR"`
	MonteCarloVaR   string `json:"monteCarloVaR"`
	ConditionalVaR  string `json:"conditionalVaR"`
	VaRAsPercentage string `json:"varAsPercentage"`
}

type PortfolioMetrics struct {
	AnnualReturn     string `json:"annualReturn"`
	AnnualVolatility string `json:"annualVolatility"`
	SharpeRatio      string `json:"sharpeRatio"`
	MaxDrawdown      string `json:"maxDrawdown"`
}

// StressTest is the effect of one fixed shock scenario on the investment,
// keyed by scenario name in the response. LossPercentage carries no % sign.
type StressTest struct {
	PortfolioValue string `json:"Portfolio Value (INR)"`
	LossAmount     string `json:"Loss Amount (INR)"`
	LossPercentage string `json:"Loss Percentage (%)"`
}

type CalculationInfo struct {
	AnalysisID      string `json:"analysisId"`
	Methodology     string `json:"methodology"`
	DataSource      string `json:"dataSource"`
	Simulations     int    `json:"simulations"`
	CalculationDate string `json:"calculationDate"`
}
