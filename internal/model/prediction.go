package model

// PredictionResponse is the result of a price forecast.
type PredictionResponse struct {
	Stock             string              `json:"stock"`
	InvestmentAmount  float64             `json:"investmentAmount"`
	Summary           PredictionSummary   `json:"summary"`
	Details           PredictionDetails   `json:"details"`
	TechnicalAnalysis TechnicalAnalysis   `json:"technicalAnalysis"`
	Metrics           ModelMetrics        `json:"metrics"`
	ModelInfo         PredictionModelInfo `json:"modelInfo"`
}

// PredictionSummary describes the forecast path end to end. Prices and
// profit are 2-decimal strings, returnPercentage ends in "%".
type PredictionSummary struct {
	PredictionStart  string `json:"predictionStart"`
	PredictionEnd    string `json:"predictionEnd"`
	StartPrice       string `json:"startPrice"`
	EndPrice         string `json:"endPrice"`
	ReturnPercentage string `json:"returnPercentage"`
	PotentialProfit  string `json:"potentialProfit"`
	CurrentPrice     string `json:"currentPrice"`
}

// PredictionDetails holds the forecast path, one price per date.
type PredictionDetails struct {
	Dates       []string  `json:"dates"`
	Predictions []string  `json:"predictions"`
}

// TechnicalAnalysis is the indicator snapshot the forecast is derived from.
type TechnicalAnalysis struct {
	SMA20          float64 `json:"sma20"`
	SMA50          float64 `json:"sma50"`
	EMA12          float64 `json:"ema12"`
	RSI            float64 `json:"rsi"`
	MACD           float64 `json:"macd"`
	TrendSignal    int     `json:"trendSignal"`
	MomentumSignal int     `json:"momentumSignal"`
	ReversionBias  int     `json:"meanReversionBias"`
	SignalStrength float64 `json:"signalStrength"`
	Signal         string  `json:"signal"`
}

// ModelMetrics compares the start of the forecast with recent history.
type ModelMetrics struct {
	RMSE    string `json:"rmse"`
	MAPE    string `json:"mape"`
	R2Score string `json:"r2Score"`
}

type PredictionModelInfo struct {
	AnalysisID  string `json:"analysisId"`
	Methodology string `json:"methodology"`
	Indicators  string `json:"indicators"`
	DataPoints  int    `json:"dataPoints"`
	Horizon     int    `json:"horizon"`
	DataSource  string `json:"dataSource"`
	LastUpdated string `json:"lastUpdated"`
}
