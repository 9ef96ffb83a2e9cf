package sentiment

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// OverallSentiment labels the mean score.
func OverallSentiment(scores []float64) string {
	if len(scores) == 0 {
		return "Neutral"
	}
	avg := stat.Mean(scores, nil)
	switch {
	case avg >= 0.7:
		return "Very Positive"
	case avg >= 0.6:
		return "Positive"
	case avg >= 0.55:
		return "Slightly Positive"
	case avg >= 0.45:
		return "Neutral"
	case avg >= 0.4:
		return "Slightly Negative"
	case avg >= 0.3:
		return "Negative"
	default:
		return "Very Negative"
	}
}

// TrendAnalysis describes the change in sentiment over the period and how
// strongly it tracks price.
func TrendAnalysis(scores []float64, correlation float64) string {
	var trend float64
	if len(scores) > 0 {
		trend = scores[len(scores)-1] - scores[0]
	}

	direction := "stable"
	switch {
	case trend > 0.05:
		direction = "positive"
	case trend < -0.05:
		direction = "negative"
	}

	strength := "weak"
	switch abs := math.Abs(correlation); {
	case abs > 0.5:
		strength = "strong"
	case abs > 0.3:
		strength = "moderate"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sentiment shows a %s trend over the analysis period. ", direction)
	fmt.Fprintf(&b, "There is a %s correlation (%.2f) between sentiment and price movements. ", strength, correlation)
	if math.Abs(correlation) > 0.4 {
		b.WriteString("Sentiment analysis can be a valuable indicator for this stock.")
	} else {
		b.WriteString("Price movements are influenced by factors beyond news sentiment.")
	}
	return b.String()
}

// KeyInsights summarizes a backtest in plain sentences.
func KeyInsights(p Performance, accuracy, correlation float64) []string {
	insights := make([]string, 0, 4)

	switch {
	case p.Outperformance > 2:
		insights = append(insights, "Sentiment-based strategy significantly outperformed buy-and-hold")
	case p.Outperformance < -2:
		insights = append(insights, "Buy-and-hold strategy outperformed sentiment-based trading")
	default:
		insights = append(insights, "Sentiment strategy performed similarly to buy-and-hold")
	}

	if accuracy > 0.6 {
		insights = append(insights, "Model shows good predictive accuracy for price direction")
	} else {
		insights = append(insights, "Model accuracy suggests sentiment has limited predictive power")
	}

	if math.Abs(correlation) > 0.5 {
		insights = append(insights, "Strong correlation between sentiment and price movements detected")
	} else {
		insights = append(insights, "Moderate correlation suggests other factors influence price significantly")
	}

	if p.WinRate > 60 {
		insights = append(insights, "High win rate indicates consistent trading opportunities")
	}
	return insights
}
