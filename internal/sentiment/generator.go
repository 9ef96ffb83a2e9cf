// Package sentiment synthesizes a daily news sentiment series for a ticker
// and backtests a long-only strategy driven by it against the price series.
package sentiment

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ndewijer/FinLedge-Backend/internal/config"
)

// MaxDays caps the length of a generated series.
const MaxDays = 60

const (
	headlineEvery    = 7
	eventWindow      = 2
	positiveHeadline = 0.7
	negativeHeadline = 0.3
)

// event is a scheduled sentiment shock at a fraction of the analysis period.
type event struct {
	at     float64
	impact float64
}

var events = []event{
	{at: 0.2, impact: 0.15},  // earnings
	{at: 0.4, impact: -0.08}, // market correction
	{at: 0.6, impact: 0.12},  // product launch
	{at: 0.8, impact: -0.05}, // regulatory news
}

var (
	positiveTemplates = []string{
		"%s reports strong quarterly results, beats estimates",
		"%s announces major expansion plans, stock rallies",
		"Analysts upgrade %s rating on robust fundamentals",
		"%s shares hit new 52-week high on positive outlook",
	}
	negativeTemplates = []string{
		"%s faces challenges amid market volatility",
		"Concerns over %s's near-term growth prospects",
		"%s stock under pressure following sector concerns",
		"Market uncertainty impacts %s investor sentiment",
	}
	neutralTemplates = []string{
		"%s maintains steady performance in mixed market",
		"%s focuses on operational efficiency initiatives",
		"%s navigates market conditions with cautious optimism",
		"%s stock shows resilience amid sector volatility",
	}
)

// Series is a generated daily sentiment history.
type Series struct {
	Dates      []string
	Scores     []float64 // 0 very negative .. 1 very positive
	NewsVolume []int
	Headlines  []string // one per week
}

// Generator produces sentiment from the per-ticker bias and volatility in the ticker table.
type Generator struct {
	table *config.TickerTable
}

// NewGenerator creates a Generator.
func NewGenerator(table *config.TickerTable) *Generator {
	return &Generator{table: table}
}

// PeriodDays is the number of generated days for a start/end pair:
// whole days rounded up, at least two and at most MaxDays.
func PeriodDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	return min(max(days, 2), MaxDays)
}

// EventInfluence sums the proximity-weighted impact of every event within
// two days of day. Event days are floor(total*fraction).
func EventInfluence(day, total int) float64 {
	var influence float64
	for _, e := range events {
		eventDay := int(math.Floor(float64(total) * e.at))
		dist := day - eventDay
		if dist < 0 {
			dist = -dist
		}
		if dist <= eventWindow {
			influence += e.impact * (1 - float64(dist)/eventWindow)
		}
	}
	return influence
}

// Generate builds the sentiment series for ticker between start and end.
// rng must not be shared with other goroutines.
func (g *Generator) Generate(ticker string, start, end time.Time, rng *rand.Rand) Series {
	profile := g.table.Profile(ticker)
	total := int(math.Ceil(end.Sub(start).Hours() / 24))
	n := PeriodDays(start, end)

	s := Series{
		Dates:      make([]string, n),
		Scores:     make([]float64, n),
		NewsVolume: make([]int, n),
	}

	for i := 0; i < n; i++ {
		s.Dates[i] = start.AddDate(0, 0, i).Format(time.DateOnly)

		score := 0.5 + profile.SentimentBias + EventInfluence(i, max(total, n))
		score += (rng.Float64() - 0.5) * profile.SentimentVolatility
		score = math.Max(0, math.Min(1, score))
		s.Scores[i] = score

		extremeness := math.Abs(score-0.5) * 2
		s.NewsVolume[i] = int(math.Floor(5 + rng.Float64()*10 + extremeness*8))

		if i%headlineEvery == 0 {
			s.Headlines = append(s.Headlines, Headline(profile.Name, score, rng))
		}
	}
	return s
}

// Headline picks a template matching score and fills in company.
func Headline(company string, score float64, rng *rand.Rand) string {
	templates := neutralTemplates
	switch {
	case score > positiveHeadline:
		templates = positiveTemplates
	case score < negativeHeadline:
		templates = negativeTemplates
	}
	return fmt.Sprintf(templates[rng.IntN(len(templates))], strings.TrimSpace(company))
}
