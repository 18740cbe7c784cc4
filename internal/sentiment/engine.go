// Package sentiment derives a categorical market-sentiment judgment for a
// symbol from its current quote and recent news volume.
package sentiment

import (
	"context"
	"time"

	"stockmcp/internal/finnhub"
)

// The news sample is always the last 7 days capped at 10 articles,
// independent of any caller-supplied window. Price change always reflects
// the current quote. This asymmetry is deliberate.
const (
	newsWindowDays = 7
	maxArticles    = 10
)

// Result is the derived sentiment judgment. It is recomputed on every
// request and never stored.
type Result struct {
	Symbol             string  `json:"symbol"`
	OverallSentiment   string  `json:"overallSentiment"`
	PriceSentiment     string  `json:"priceSentiment"`
	PriceChangePercent float64 `json:"priceChangePercent"`
	NewsCount          int     `json:"newsCount"`
	MediaInterest      string  `json:"mediaInterest"`
	AnalysisDate       string  `json:"analysisDate"`
}

// Engine computes sentiment results against a market-data gateway.
type Engine struct {
	gateway finnhub.Gateway
	now     func() time.Time
}

// NewEngine creates a sentiment engine.
func NewEngine(gateway finnhub.Gateway) *Engine {
	return &Engine{
		gateway: gateway,
		now:     time.Now,
	}
}

// Analyze derives the sentiment result for a symbol. A failure of either
// the quote or the news lookup fails the whole computation with that
// dependency's error unchanged.
func (e *Engine) Analyze(ctx context.Context, symbol string) (*Result, error) {
	quote, err := e.gateway.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	now := e.now()
	articles, err := e.gateway.GetNews(ctx, symbol, now.AddDate(0, 0, -newsWindowDays), now)
	if err != nil {
		return nil, err
	}
	if len(articles) > maxArticles {
		articles = articles[:maxArticles]
	}

	percentChange := 0.0
	if quote.PercentChange != nil {
		percentChange = *quote.PercentChange
	}

	priceSentiment, score := classifyPriceChange(percentChange)

	return &Result{
		Symbol:             symbol,
		OverallSentiment:   overallLabel(score),
		PriceSentiment:     priceSentiment,
		PriceChangePercent: percentChange,
		NewsCount:          len(articles),
		MediaInterest:      classifyNewsVolume(len(articles)),
		AnalysisDate:       now.Format("2006-01-02"),
	}, nil
}

// classifyPriceChange buckets a percent change into one of five labels and
// its numeric score. The strict comparisons put exactly 2.0 in "positive"
// and exactly -2.0 in "very negative".
func classifyPriceChange(p float64) (string, int) {
	switch {
	case p > 2:
		return "very positive", 2
	case p > 0.5:
		return "positive", 1
	case p > -0.5:
		return "neutral", 0
	case p > -2:
		return "negative", -1
	default:
		return "very negative", -2
	}
}

// classifyNewsVolume maps the article count in the window to a media
// interest label. More news often indicates more interest.
func classifyNewsVolume(count int) string {
	switch {
	case count > 8:
		return "high media interest"
	case count > 4:
		return "moderate media interest"
	default:
		return "low media interest"
	}
}

// overallLabel maps the price score directly to the overall sentiment.
// News volume is reported alongside but does not influence the label.
func overallLabel(score int) string {
	switch score {
	case 2:
		return "very bullish"
	case 1:
		return "bullish"
	case -1:
		return "bearish"
	case -2:
		return "very bearish"
	default:
		return "neutral"
	}
}
