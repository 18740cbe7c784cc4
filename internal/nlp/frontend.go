package nlp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"stockmcp/internal/mcp"
	"stockmcp/internal/sentiment"
)

const systemPrompt = "You are a financial data assistant. Given a user question about " +
	"stocks, choose the single most relevant function and extract its arguments. " +
	"Stock symbols are short ticker codes such as AAPL or MSFT. If the question is " +
	"not about stock data, do not call any function."

// Function names declared to the model are distinct from the JSON-RPC tool
// names but map 1:1 onto them.
var functionToTool = map[string]string{
	"get_stock_price":         mcp.ToolStockQuote,
	"get_company_info":        mcp.ToolCompanyProfile,
	"get_company_news":        mcp.ToolCompanyNews,
	"analyze_stock_sentiment": mcp.ToolStockSentiment,
}

// Answer is the front end's response to one free-text query.
type Answer struct {
	Query    string      `json:"query"`
	Tool     string      `json:"tool,omitempty"`
	Response string      `json:"response"`
	Data     interface{} `json:"data,omitempty"`
}

// FrontEnd translates free text into a tool invocation and renders a text
// summary of the result. The completion capability is injected at startup
// and may be absent.
type FrontEnd struct {
	completer Completer
	registry  *mcp.Registry
	executor  *mcp.ToolExecutor
	logger    *slog.Logger
}

// NewFrontEnd creates a front end. completer may be nil, in which case the
// front end reports itself unavailable.
func NewFrontEnd(completer Completer, registry *mcp.Registry, executor *mcp.ToolExecutor, logger *slog.Logger) *FrontEnd {
	return &FrontEnd{
		completer: completer,
		registry:  registry,
		executor:  executor,
		logger:    logger.With("component", "nlp"),
	}
}

// Available reports whether the completion capability was configured.
func (f *FrontEnd) Available() bool {
	return f.completer != nil
}

// Ask answers one free-text query. Zero function selections and invalid
// extracted arguments both produce a clarifying message rather than an
// error.
func (f *FrontEnd) Ask(ctx context.Context, query string) (*Answer, error) {
	if f.completer == nil {
		return nil, errors.New("no completion service is configured")
	}

	selection, err := f.completer.SelectFunction(ctx, systemPrompt, query, functionDefs())
	if err != nil {
		return nil, err
	}

	if selection == nil {
		return &Answer{
			Query:    query,
			Response: "I couldn't match your question to a stock data lookup. Try asking about a specific stock, for example: \"What is the current price of AAPL?\"",
		}, nil
	}

	toolName, ok := functionToTool[selection.Name]
	if !ok {
		f.logger.Warn("unknown_function_selected", "function", selection.Name)
		return &Answer{
			Query:    query,
			Response: "I couldn't match your question to a stock data lookup. Could you rephrase it?",
		}, nil
	}

	args := selection.Arguments
	if args == nil {
		args = map[string]interface{}{}
	}
	if symbol, ok := args["symbol"].(string); ok {
		args["symbol"] = strings.ToUpper(strings.TrimSpace(symbol))
	}

	if err := f.registry.ValidateArgs(toolName, args); err != nil {
		f.logger.Warn("extracted_args_invalid", "tool", toolName, "error", err)
		return &Answer{
			Query:    query,
			Response: "I understood the question but couldn't work out which stock you mean. Please include a ticker symbol such as AAPL or MSFT.",
		}, nil
	}

	f.logger.Info("nlp_dispatch", "function", selection.Name, "tool", toolName)

	result, cerr := f.executor.Execute(ctx, toolName, args)
	if cerr != nil {
		return nil, cerr
	}

	return &Answer{
		Query:    query,
		Tool:     toolName,
		Response: renderSummary(result),
		Data:     result,
	}, nil
}

// functionDefs declares the callable function signatures, reusing the tool
// catalog's input schemas.
func functionDefs() []FunctionDef {
	return []FunctionDef{
		{
			Name:        "get_stock_price",
			Description: "Get the current price and daily change for a stock symbol",
			Parameters:  schemaFor(mcp.ToolStockQuote),
		},
		{
			Name:        "get_company_info",
			Description: "Get company profile information for a stock symbol",
			Parameters:  schemaFor(mcp.ToolCompanyProfile),
		},
		{
			Name:        "get_company_news",
			Description: "Get recent news articles about a company",
			Parameters:  schemaFor(mcp.ToolCompanyNews),
		},
		{
			Name:        "analyze_stock_sentiment",
			Description: "Analyze market sentiment for a stock from price performance and news volume",
			Parameters:  schemaFor(mcp.ToolStockSentiment),
		},
	}
}

func schemaFor(tool string) map[string]interface{} {
	for _, t := range mcp.Catalog() {
		if t.Name == tool {
			return t.InputSchema
		}
	}
	return map[string]interface{}{"type": "object"}
}

// renderSummary produces a one-paragraph text rendering of a tool result.
func renderSummary(result interface{}) string {
	switch r := result.(type) {
	case *mcp.QuoteResult:
		if r.CurrentPrice == nil {
			return fmt.Sprintf("No quote data is available for %s right now.", r.Symbol)
		}
		summary := fmt.Sprintf("%s is trading at %.2f", r.Symbol, *r.CurrentPrice)
		if r.Change != nil && r.PercentChange != nil {
			summary += fmt.Sprintf(" (%+.2f, %+.2f%% today)", *r.Change, *r.PercentChange)
		}
		return summary + "."
	case *mcp.ProfileResult:
		if r.Name == "" {
			return fmt.Sprintf("No company profile was found for %s.", r.Symbol)
		}
		return fmt.Sprintf("%s (%s) is listed on %s, operates in the %s industry and has a market cap of %.0f million %s.",
			r.Name, r.Symbol, r.Exchange, r.Industry, r.MarketCap, r.Currency)
	case *mcp.NewsResult:
		if len(r.Articles) == 0 {
			return fmt.Sprintf("No recent news was found for %s.", r.Symbol)
		}
		headlines := make([]string, 0, len(r.Articles))
		for _, a := range r.Articles {
			headlines = append(headlines, fmt.Sprintf("- %s (%s)", a.Headline, a.Source))
		}
		return fmt.Sprintf("Here are the %d most recent articles about %s:\n%s",
			len(r.Articles), r.Symbol, strings.Join(headlines, "\n"))
	case *sentiment.Result:
		return fmt.Sprintf("Market sentiment for %s is %s: the price moved %+.2f%% (%s) with %s (%d articles in the last week).",
			r.Symbol, r.OverallSentiment, r.PriceChangePercent, r.PriceSentiment, r.MediaInterest, r.NewsCount)
	default:
		return fmt.Sprintf("%v", result)
	}
}
