package mcp

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockmcp/internal/finnhub"
)

type fakeGateway struct {
	quote      *finnhub.Quote
	quoteErr   error
	profile    *finnhub.Profile
	profileErr error
	news       []finnhub.Article
	newsErr    error

	newsFrom time.Time
	newsTo   time.Time
}

func (g *fakeGateway) GetQuote(ctx context.Context, symbol string) (*finnhub.Quote, error) {
	if g.quoteErr != nil {
		return nil, g.quoteErr
	}
	if g.quote == nil {
		return &finnhub.Quote{}, nil
	}
	return g.quote, nil
}

func (g *fakeGateway) GetProfile(ctx context.Context, symbol string) (*finnhub.Profile, error) {
	if g.profileErr != nil {
		return nil, g.profileErr
	}
	if g.profile == nil {
		return &finnhub.Profile{}, nil
	}
	return g.profile, nil
}

func (g *fakeGateway) GetNews(ctx context.Context, symbol string, from, to time.Time) ([]finnhub.Article, error) {
	g.newsFrom = from
	g.newsTo = to
	if g.newsErr != nil {
		return nil, g.newsErr
	}
	return g.news, nil
}

func floatPtr(v float64) *float64 { return &v }

func TestEchoTool(t *testing.T) {
	te := NewToolExecutor(&fakeGateway{})

	result, cerr := te.Execute(context.Background(), ToolEcho, map[string]interface{}{"message": "hello"})
	require.Nil(t, cerr)
	assert.Equal(t, "Echo: hello", result)

	// Message defaults to the empty string when absent.
	result, cerr = te.Execute(context.Background(), ToolEcho, nil)
	require.Nil(t, cerr)
	assert.Equal(t, "Echo: ", result)
}

func TestCalculateTool(t *testing.T) {
	te := NewToolExecutor(&fakeGateway{})
	ctx := context.Background()

	calc := func(params map[string]interface{}) (interface{}, *ClassedError) {
		return te.Execute(ctx, ToolCalculate, params)
	}

	result, cerr := calc(map[string]interface{}{"operation": "add", "a": 2.0, "b": 3.0})
	require.Nil(t, cerr)
	assert.Equal(t, 5.0, result)

	result, cerr = calc(map[string]interface{}{"operation": "subtract", "a": 2.0, "b": 3.0})
	require.Nil(t, cerr)
	assert.Equal(t, -1.0, result)

	result, cerr = calc(map[string]interface{}{"operation": "multiply", "a": 4.0, "b": 2.5})
	require.Nil(t, cerr)
	assert.Equal(t, 10.0, result)

	result, cerr = calc(map[string]interface{}{"operation": "divide", "a": 10.0, "b": 4.0})
	require.Nil(t, cerr)
	assert.Equal(t, 2.5, result)

	// b defaults to 0 and is ignored for trig operations.
	result, cerr = calc(map[string]interface{}{"operation": "sin", "a": 0.0})
	require.Nil(t, cerr)
	assert.Equal(t, 0.0, result)

	result, cerr = calc(map[string]interface{}{"operation": "cos", "a": 0.0})
	require.Nil(t, cerr)
	assert.Equal(t, 1.0, result)
}

func TestCalculateDivisionByZero(t *testing.T) {
	te := NewToolExecutor(&fakeGateway{})

	_, cerr := te.Execute(context.Background(), ToolCalculate, map[string]interface{}{
		"operation": "divide", "a": 10.0, "b": 0.0,
	})
	require.NotNil(t, cerr)
	assert.Equal(t, InvalidParams, cerr.Code)
	assert.Contains(t, cerr.Message, "Division by zero")
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(cerr.Class))
}

func TestCalculateUnknownOperation(t *testing.T) {
	te := NewToolExecutor(&fakeGateway{})

	_, cerr := te.Execute(context.Background(), ToolCalculate, map[string]interface{}{
		"operation": "modulo", "a": 10.0, "b": 3.0,
	})
	require.NotNil(t, cerr)
	assert.Equal(t, InvalidParams, cerr.Code)
	assert.Equal(t, "Unknown operation: modulo", cerr.Message)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(cerr.Class))
}

func TestCalculateMissingOperand(t *testing.T) {
	te := NewToolExecutor(&fakeGateway{})

	_, cerr := te.Execute(context.Background(), ToolCalculate, map[string]interface{}{"operation": "add"})
	require.NotNil(t, cerr)
	assert.Equal(t, InvalidParams, cerr.Code)
	assert.Equal(t, "Missing required parameter: a", cerr.Message)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(cerr.Class))
}

func TestUnknownToolName(t *testing.T) {
	te := NewToolExecutor(&fakeGateway{})

	_, cerr := te.Execute(context.Background(), "nonexistent", nil)
	require.NotNil(t, cerr)
	assert.Equal(t, InvalidParams, cerr.Code)
	assert.Equal(t, "Unknown tool: nonexistent", cerr.Message)
	assert.Equal(t, http.StatusNotFound, HTTPStatus(cerr.Class))
}

func TestStockQuoteRequiresSymbol(t *testing.T) {
	te := NewToolExecutor(&fakeGateway{})

	for _, tool := range []string{ToolStockQuote, ToolCompanyProfile, ToolCompanyNews, ToolStockSentiment} {
		_, cerr := te.Execute(context.Background(), tool, map[string]interface{}{})
		require.NotNil(t, cerr, "tool %s", tool)
		assert.Equal(t, InvalidParams, cerr.Code)
		assert.Equal(t, "Symbol is required", cerr.Message)
		assert.Equal(t, http.StatusBadRequest, HTTPStatus(cerr.Class))
	}
}

func TestStockQuoteMapsFields(t *testing.T) {
	gw := &fakeGateway{quote: &finnhub.Quote{
		CurrentPrice:  floatPtr(150.25),
		Change:        floatPtr(1.5),
		PercentChange: floatPtr(1.01),
	}}
	te := NewToolExecutor(gw)

	result, cerr := te.Execute(context.Background(), ToolStockQuote, map[string]interface{}{"symbol": "AAPL"})
	require.Nil(t, cerr)

	quote, ok := result.(*QuoteResult)
	require.True(t, ok)
	assert.Equal(t, "AAPL", quote.Symbol)
	assert.Equal(t, 150.25, *quote.CurrentPrice)
	assert.Equal(t, 1.5, *quote.Change)
	// Fields the upstream omitted stay absent rather than erroring.
	assert.Nil(t, quote.HighOfDay)
	assert.Nil(t, quote.Timestamp)
}

func TestCompanyProfileMapsFields(t *testing.T) {
	gw := &fakeGateway{profile: &finnhub.Profile{
		Name:                 "Apple Inc",
		Country:              "US",
		Currency:             "USD",
		Exchange:             "NASDAQ",
		IPO:                  "1980-12-12",
		MarketCapitalization: 2800000,
		Industry:             "Technology",
		WebURL:               "https://www.apple.com/",
		Logo:                 "https://example.com/logo.png",
	}}
	te := NewToolExecutor(gw)

	result, cerr := te.Execute(context.Background(), ToolCompanyProfile, map[string]interface{}{"symbol": "AAPL"})
	require.Nil(t, cerr)

	profile, ok := result.(*ProfileResult)
	require.True(t, ok)
	assert.Equal(t, "Apple Inc", profile.Name)
	assert.Equal(t, "Technology", profile.Industry)
	assert.Equal(t, "https://www.apple.com/", profile.Website)
	assert.Equal(t, 2800000.0, profile.MarketCap)
}

func TestCompanyNewsTruncatesToTen(t *testing.T) {
	news := make([]finnhub.Article, 15)
	for i := range news {
		news[i] = finnhub.Article{Headline: string(rune('a' + i))}
	}
	gw := &fakeGateway{news: news}
	te := NewToolExecutor(gw)

	result, cerr := te.Execute(context.Background(), ToolCompanyNews, map[string]interface{}{"symbol": "AAPL"})
	require.Nil(t, cerr)

	nr, ok := result.(*NewsResult)
	require.True(t, ok)
	require.Len(t, nr.Articles, 10)
	// Original order preserved.
	assert.Equal(t, "a", nr.Articles[0].Headline)
	assert.Equal(t, "j", nr.Articles[9].Headline)
}

func TestCompanyNewsDateRange(t *testing.T) {
	gw := &fakeGateway{}
	te := NewToolExecutor(gw)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	te.now = func() time.Time { return now }

	_, cerr := te.Execute(context.Background(), ToolCompanyNews, map[string]interface{}{"symbol": "AAPL"})
	require.Nil(t, cerr)
	assert.Equal(t, now.AddDate(0, 0, -7), gw.newsFrom)
	assert.Equal(t, now, gw.newsTo)

	// Caller-supplied day count widens the window.
	_, cerr = te.Execute(context.Background(), ToolCompanyNews, map[string]interface{}{"symbol": "AAPL", "days": 30.0})
	require.Nil(t, cerr)
	assert.Equal(t, now.AddDate(0, 0, -30), gw.newsFrom)
}

func TestGatewayFailureBecomesExecutionError(t *testing.T) {
	gw := &fakeGateway{quoteErr: errors.New("API request failed with status code 502")}
	te := NewToolExecutor(gw)

	_, cerr := te.Execute(context.Background(), ToolStockQuote, map[string]interface{}{"symbol": "AAPL"})
	require.NotNil(t, cerr)
	assert.Equal(t, InternalError, cerr.Code)
	assert.Contains(t, cerr.Message, "Tool execution error")
	assert.Contains(t, cerr.Message, "502")
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(cerr.Class))
}

func TestSentimentErrorPropagatesThroughTool(t *testing.T) {
	gw := &fakeGateway{quote: &finnhub.Quote{}, newsErr: errors.New("news feed down")}
	te := NewToolExecutor(gw)

	_, cerr := te.Execute(context.Background(), ToolStockSentiment, map[string]interface{}{"symbol": "AAPL"})
	require.NotNil(t, cerr)
	assert.Equal(t, InternalError, cerr.Code)
	assert.Contains(t, cerr.Message, "news feed down")
}
