package mcp

// Fixed resource contents keyed by URI. The catalog is hard-coded; there is
// no dynamic resource discovery.
const stockInfoText = `This MCP server integrates with the Finnhub Stock API to provide real-time stock data.

Available stock tools:
1. stock_quote - Get real-time quotes for a stock symbol
2. company_profile - Get company information for a stock symbol
3. company_news - Get recent news articles for a company
4. stock_sentiment - Analyze market sentiment from price performance and news volume

Example usage:
- Use the stock_quote tool with a symbol parameter (e.g., AAPL, MSFT, GOOG)
- Use the company_profile tool to get detailed information about a company
- Use the company_news tool to get recent news articles (optionally specify the number of days)
- Use the stock_sentiment tool to get a categorical sentiment judgment for a symbol
`

const sampleText = "This is sample text content from the MCP server.\nIt can be used to provide context to the model."

const sampleConfigJSON = `{
  "setting1": "value1",
  "setting2": "value2",
  "nested": {
    "key": "value"
  }
}`

// Resources returns the static resource catalog.
func Resources() []Resource {
	return []Resource{
		{
			URI:         "sample://data/example.txt",
			MimeType:    "text/plain",
			Title:       "Sample Text Resource",
			Description: "This is a sample text resource provided by the MCP server.",
		},
		{
			URI:         "sample://data/config.json",
			MimeType:    "application/json",
			Title:       "Sample JSON Configuration",
			Description: "This is a sample JSON configuration resource.",
		},
		{
			URI:         "finnhub://data/stock-info.txt",
			MimeType:    "text/plain",
			Title:       "Finnhub Stock API Information",
			Description: "Information about the Finnhub Stock API integration.",
		},
	}
}

// ReadResource performs an exact-match lookup of a resource URI and returns
// its literal content and mime type.
func ReadResource(uri string) (*ReadResourceResult, bool) {
	switch uri {
	case "sample://data/example.txt":
		return &ReadResourceResult{Content: sampleText, MimeType: "text/plain"}, true
	case "sample://data/config.json":
		return &ReadResourceResult{Content: sampleConfigJSON, MimeType: "application/json"}, true
	case "finnhub://data/stock-info.txt":
		return &ReadResourceResult{Content: stockInfoText, MimeType: "text/plain"}, true
	default:
		return nil, false
	}
}
