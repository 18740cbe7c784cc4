package sentiment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockmcp/internal/finnhub"
)

type fakeGateway struct {
	quote    *finnhub.Quote
	quoteErr error
	news     []finnhub.Article
	newsErr  error

	newsFrom time.Time
	newsTo   time.Time
}

func (g *fakeGateway) GetQuote(ctx context.Context, symbol string) (*finnhub.Quote, error) {
	if g.quoteErr != nil {
		return nil, g.quoteErr
	}
	return g.quote, nil
}

func (g *fakeGateway) GetProfile(ctx context.Context, symbol string) (*finnhub.Profile, error) {
	return &finnhub.Profile{}, nil
}

func (g *fakeGateway) GetNews(ctx context.Context, symbol string, from, to time.Time) ([]finnhub.Article, error) {
	g.newsFrom = from
	g.newsTo = to
	if g.newsErr != nil {
		return nil, g.newsErr
	}
	return g.news, nil
}

func quoteWithChange(dp float64) *finnhub.Quote {
	return &finnhub.Quote{PercentChange: &dp}
}

func articles(n int) []finnhub.Article {
	out := make([]finnhub.Article, n)
	for i := range out {
		out[i] = finnhub.Article{Headline: "h", Source: "s"}
	}
	return out
}

func TestPriceBucketBoundaries(t *testing.T) {
	tests := []struct {
		change  float64
		price   string
		overall string
	}{
		{2.01, "very positive", "very bullish"},
		{2.0, "positive", "bullish"}, // boundary rounds toward the less extreme bucket
		{0.51, "positive", "bullish"},
		{0.5, "neutral", "neutral"},
		{0.0, "neutral", "neutral"},
		{-0.5, "neutral", "neutral"},
		{-0.51, "negative", "bearish"},
		{-2.0, "very negative", "very bearish"}, // -2 exactly is already very negative
		{-2.01, "very negative", "very bearish"},
	}

	for _, tt := range tests {
		gw := &fakeGateway{quote: quoteWithChange(tt.change)}
		engine := NewEngine(gw)

		result, err := engine.Analyze(context.Background(), "AAPL")
		require.NoError(t, err)
		assert.Equal(t, tt.price, result.PriceSentiment, "percentChange=%v", tt.change)
		assert.Equal(t, tt.overall, result.OverallSentiment, "percentChange=%v", tt.change)
		assert.Equal(t, tt.change, result.PriceChangePercent)
	}
}

func TestMediaInterestBuckets(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "low media interest"},
		{4, "low media interest"},
		{5, "moderate media interest"},
		{8, "moderate media interest"},
		{9, "high media interest"},
	}

	for _, tt := range tests {
		gw := &fakeGateway{quote: quoteWithChange(0), news: articles(tt.count)}
		engine := NewEngine(gw)

		result, err := engine.Analyze(context.Background(), "AAPL")
		require.NoError(t, err)
		assert.Equal(t, tt.want, result.MediaInterest, "count=%d", tt.count)
		assert.Equal(t, tt.count, result.NewsCount)
	}
}

func TestOverallIgnoresNewsVolume(t *testing.T) {
	quiet := &fakeGateway{quote: quoteWithChange(1.0), news: articles(0)}
	noisy := &fakeGateway{quote: quoteWithChange(1.0), news: articles(10)}

	a, err := NewEngine(quiet).Analyze(context.Background(), "AAPL")
	require.NoError(t, err)
	b, err := NewEngine(noisy).Analyze(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, a.OverallSentiment, b.OverallSentiment)
	assert.NotEqual(t, a.MediaInterest, b.MediaInterest)
}

func TestNewsCountCappedAtTen(t *testing.T) {
	gw := &fakeGateway{quote: quoteWithChange(0), news: articles(25)}
	engine := NewEngine(gw)

	result, err := engine.Analyze(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 10, result.NewsCount)
	assert.Equal(t, "high media interest", result.MediaInterest)
}

func TestFixedSevenDayWindow(t *testing.T) {
	gw := &fakeGateway{quote: quoteWithChange(0)}
	engine := NewEngine(gw)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	engine.now = func() time.Time { return now }

	result, err := engine.Analyze(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), gw.newsFrom)
	assert.Equal(t, now, gw.newsTo)
	assert.Equal(t, "2024-03-15", result.AnalysisDate)
}

func TestMissingPercentChangeIsNeutral(t *testing.T) {
	gw := &fakeGateway{quote: &finnhub.Quote{}}
	engine := NewEngine(gw)

	result, err := engine.Analyze(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "neutral", result.PriceSentiment)
	assert.Equal(t, "neutral", result.OverallSentiment)
	assert.Zero(t, result.PriceChangePercent)
}

func TestUpstreamErrorsShortCircuit(t *testing.T) {
	quoteErr := errors.New("quote unavailable")
	gw := &fakeGateway{quoteErr: quoteErr}
	_, err := NewEngine(gw).Analyze(context.Background(), "AAPL")
	assert.ErrorIs(t, err, quoteErr)

	newsErr := errors.New("news unavailable")
	gw = &fakeGateway{quote: quoteWithChange(1), newsErr: newsErr}
	_, err = NewEngine(gw).Analyze(context.Background(), "AAPL")
	assert.ErrorIs(t, err, newsErr)
}
