package model

// SentimentResponse is the result of a sentiment backtest.
type SentimentResponse struct {
	StockData          StockData          `json:"stockData"`
	SentimentAnalysis  SentimentAnalysis  `json:"sentimentAnalysis"`
	PerformanceMetrics PerformanceMetrics `json:"performanceMetrics"`
	InsightSummary     InsightSummary     `json:"insightSummary"`
	ModelInfo          SentimentModelInfo `json:"modelInfo"`
}

type StockData struct {
	Ticker           string `json:"ticker"`
	InvestmentAmount string `json:"investmentAmount"`
	Period           Period `json:"period"`
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SentimentAnalysis holds the aligned daily series. Dates, Prices,
// SentimentScores and NewsVolume share one length n; Predictions and
// TradingSignals start on the second day and hold n-1 entries.
type SentimentAnalysis struct {
	Dates           []string `json:"dates"`
	Prices          []string `json:"prices"`
	SentimentScores []string `json:"sentimentScores"`
	Predictions     []int    `json:"predictions"`
	TradingSignals  []string `json:"tradingSignals"`
	NewsVolume      []int    `json:"newsVolume"`
	Accuracy        string   `json:"accuracy"`
}

type PerformanceMetrics struct {
	ModelAccuracy        string `json:"modelAccuracy"`
	StrategyReturn       string `json:"strategyReturn"`
	BuyAndHoldReturn     string `json:"buyAndHoldReturn"`
	Outperformance       string `json:"outperformance"`
	TotalTrades          int    `json:"totalTrades"`
	WinningTrades        int    `json:"winningTrades"`
	WinRate              string `json:"winRate"`
	SentimentCorrelation string `json:"sentimentCorrelation"`
}

type InsightSummary struct {
	OverallSentiment string   `json:"overallSentiment"`
	TrendAnalysis    string   `json:"trendAnalysis"`
	TopHeadlines     []string `json:"topHeadlines"`
	KeyInsights      []string `json:"keyInsights"`
}

type SentimentModelInfo struct {
	AnalysisID     string `json:"analysisId"`
	Methodology    string `json:"methodology"`
	DataSource     string `json:"dataSource"`
	PriceSource    string `json:"priceSource"`
	SentimentRange string `json:"sentimentRange"`
	LastUpdated    string `json:"lastUpdated"`
}
