package mcp

import (
	"context"
	"fmt"
	"math"
	"time"

	"stockmcp/internal/finnhub"
	"stockmcp/internal/sentiment"
)

const (
	defaultNewsDays = 7
	maxNewsArticles = 10
)

// ToolExecutor dispatches tools/call invocations over the fixed tool set.
// Each tool validates its own required parameters before doing any work;
// failures while performing the work are wrapped as tool execution errors
// at this boundary.
type ToolExecutor struct {
	gateway  finnhub.Gateway
	analyzer *sentiment.Engine
	now      func() time.Time
}

// NewToolExecutor creates a tool executor backed by a market-data gateway.
func NewToolExecutor(gateway finnhub.Gateway) *ToolExecutor {
	return &ToolExecutor{
		gateway:  gateway,
		analyzer: sentiment.NewEngine(gateway),
		now:      time.Now,
	}
}

// QuoteResult is the stock_quote output shape. Optional upstream fields
// stay absent rather than erroring.
type QuoteResult struct {
	Symbol        string   `json:"symbol"`
	CurrentPrice  *float64 `json:"currentPrice"`
	Change        *float64 `json:"change"`
	PercentChange *float64 `json:"percentChange"`
	HighOfDay     *float64 `json:"highOfDay"`
	LowOfDay      *float64 `json:"lowOfDay"`
	OpenPrice     *float64 `json:"openPrice"`
	PreviousClose *float64 `json:"previousClose"`
	Timestamp     *int64   `json:"timestamp"`
}

// ProfileResult is the company_profile output shape.
type ProfileResult struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Currency  string  `json:"currency"`
	Exchange  string  `json:"exchange"`
	IPO       string  `json:"ipo"`
	MarketCap float64 `json:"market_cap"`
	Industry  string  `json:"industry"`
	Website   string  `json:"website"`
	Logo      string  `json:"logo"`
}

// NewsArticle is one formatted article in the company_news output.
type NewsArticle struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
	Date     int64  `json:"date"`
	Source   string `json:"source"`
}

// NewsResult is the company_news output shape.
type NewsResult struct {
	Symbol   string        `json:"symbol"`
	Articles []NewsArticle `json:"articles"`
}

// Execute runs the named tool with the given parameter mapping. Validation
// failures return -32602; unknown tools return -32602 with the not-found
// class; anything that fails while performing the work, including a panic
// inside a tool, becomes a -32603 tool execution error.
func (te *ToolExecutor) Execute(ctx context.Context, name string, params map[string]interface{}) (result interface{}, cerr *ClassedError) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			cerr = Internal("Tool execution error: %v", r)
		}
	}()

	if params == nil {
		params = map[string]interface{}{}
	}

	var err error
	switch name {
	case ToolEcho:
		result = te.echo(params)
	case ToolCalculate:
		result, cerr = te.calculate(params)
	case ToolStockQuote:
		result, cerr, err = te.stockQuote(ctx, params)
	case ToolCompanyProfile:
		result, cerr, err = te.companyProfile(ctx, params)
	case ToolCompanyNews:
		result, cerr, err = te.companyNews(ctx, params)
	case ToolStockSentiment:
		result, cerr, err = te.stockSentiment(ctx, params)
	default:
		return nil, NotFound("Unknown tool: %s", name)
	}

	if cerr != nil {
		return nil, cerr
	}
	if err != nil {
		return nil, Internal("Tool execution error: %s", err.Error())
	}
	return result, nil
}

func (te *ToolExecutor) echo(params map[string]interface{}) string {
	message, _ := params["message"].(string)
	return fmt.Sprintf("Echo: %s", message)
}

func (te *ToolExecutor) calculate(params map[string]interface{}) (interface{}, *ClassedError) {
	operation, _ := params["operation"].(string)

	a, ok := numberParam(params, "a")
	if !ok {
		if _, present := params["a"]; !present {
			return nil, BadRequest("Missing required parameter: a")
		}
		return nil, BadRequest("Parameter 'a' must be a number")
	}

	// b defaults to 0 and is ignored by the trig operations.
	b, ok := numberParam(params, "b")
	if !ok {
		if _, present := params["b"]; present {
			return nil, BadRequest("Parameter 'b' must be a number")
		}
		b = 0
	}

	switch operation {
	case "add":
		return a + b, nil
	case "subtract":
		return a - b, nil
	case "multiply":
		return a * b, nil
	case "divide":
		if b == 0 {
			return nil, BadRequest("Division by zero is not allowed")
		}
		return a / b, nil
	case "sin":
		return math.Sin(a), nil
	case "cos":
		return math.Cos(a), nil
	case "tan":
		return math.Tan(a), nil
	default:
		return nil, BadRequest("Unknown operation: %s", operation)
	}
}

func (te *ToolExecutor) stockQuote(ctx context.Context, params map[string]interface{}) (interface{}, *ClassedError, error) {
	symbol, cerr := symbolParam(params)
	if cerr != nil {
		return nil, cerr, nil
	}

	quote, err := te.gateway.GetQuote(ctx, symbol)
	if err != nil {
		return nil, nil, err
	}

	return &QuoteResult{
		Symbol:        symbol,
		CurrentPrice:  quote.CurrentPrice,
		Change:        quote.Change,
		PercentChange: quote.PercentChange,
		HighOfDay:     quote.HighOfDay,
		LowOfDay:      quote.LowOfDay,
		OpenPrice:     quote.OpenPrice,
		PreviousClose: quote.PreviousClose,
		Timestamp:     quote.Timestamp,
	}, nil, nil
}

func (te *ToolExecutor) companyProfile(ctx context.Context, params map[string]interface{}) (interface{}, *ClassedError, error) {
	symbol, cerr := symbolParam(params)
	if cerr != nil {
		return nil, cerr, nil
	}

	profile, err := te.gateway.GetProfile(ctx, symbol)
	if err != nil {
		return nil, nil, err
	}

	return &ProfileResult{
		Symbol:    symbol,
		Name:      profile.Name,
		Country:   profile.Country,
		Currency:  profile.Currency,
		Exchange:  profile.Exchange,
		IPO:       profile.IPO,
		MarketCap: profile.MarketCapitalization,
		Industry:  profile.Industry,
		Website:   profile.WebURL,
		Logo:      profile.Logo,
	}, nil, nil
}

func (te *ToolExecutor) companyNews(ctx context.Context, params map[string]interface{}) (interface{}, *ClassedError, error) {
	symbol, cerr := symbolParam(params)
	if cerr != nil {
		return nil, cerr, nil
	}

	days := defaultNewsDays
	if d, ok := numberParam(params, "days"); ok {
		days = int(d)
	}

	// Calendar dates, not timestamps.
	now := te.now()
	articles, err := te.gateway.GetNews(ctx, symbol, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, nil, err
	}

	if len(articles) > maxNewsArticles {
		articles = articles[:maxNewsArticles]
	}

	formatted := make([]NewsArticle, 0, len(articles))
	for _, a := range articles {
		formatted = append(formatted, NewsArticle{
			Headline: a.Headline,
			Summary:  a.Summary,
			URL:      a.URL,
			Date:     a.DateTime,
			Source:   a.Source,
		})
	}

	return &NewsResult{Symbol: symbol, Articles: formatted}, nil, nil
}

func (te *ToolExecutor) stockSentiment(ctx context.Context, params map[string]interface{}) (interface{}, *ClassedError, error) {
	symbol, cerr := symbolParam(params)
	if cerr != nil {
		return nil, cerr, nil
	}

	result, err := te.analyzer.Analyze(ctx, symbol)
	if err != nil {
		return nil, nil, err
	}
	return result, nil, nil
}

func symbolParam(params map[string]interface{}) (string, *ClassedError) {
	symbol, _ := params["symbol"].(string)
	if symbol == "" {
		return "", BadRequest("Symbol is required")
	}
	return symbol, nil
}

func numberParam(params map[string]interface{}, key string) (float64, bool) {
	v, ok := params[key].(float64)
	return v, ok
}
