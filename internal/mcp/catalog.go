package mcp

// Tool names are a closed set resolved through the registry built at
// startup; unknown names are rejected with a validation error.
const (
	ToolEcho           = "echo"
	ToolCalculate      = "calculate"
	ToolStockQuote     = "stock_quote"
	ToolCompanyProfile = "company_profile"
	ToolCompanyNews    = "company_news"
	ToolStockSentiment = "stock_sentiment"
)

// Catalog returns the static tool descriptors in declaration order.
// Input schemas are JSON Schema Draft 7 per the MCP specification.
func Catalog() []Tool {
	return []Tool{
		{
			Name:        ToolEcho,
			Title:       "Echo Tool",
			Description: "A simple tool that echoes back the input message",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"message": map[string]interface{}{
						"type":        "string",
						"description": "The message to echo back",
					},
				},
				"required": []interface{}{"message"},
			},
		},
		{
			Name:        ToolCalculate,
			Title:       "Simple Calculator",
			Description: "Performs basic mathematical operations",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"operation": map[string]interface{}{
						"type":        "string",
						"enum":        []interface{}{"add", "subtract", "multiply", "divide", "sin", "cos", "tan"},
						"description": "The operation to perform",
					},
					"a": map[string]interface{}{
						"type":        "number",
						"description": "First operand",
					},
					"b": map[string]interface{}{
						"type":        "number",
						"description": "Second operand (not used for sin, cos, tan)",
					},
				},
				"required": []interface{}{"operation", "a"},
			},
		},
		{
			Name:        ToolStockQuote,
			Title:       "Stock Quote",
			Description: "Get real-time stock quote data from Finnhub",
			InputSchema: symbolOnlySchema(),
		},
		{
			Name:        ToolCompanyProfile,
			Title:       "Company Profile",
			Description: "Get company profile information from Finnhub",
			InputSchema: symbolOnlySchema(),
		},
		{
			Name:        ToolCompanyNews,
			Title:       "Company News",
			Description: "Get recent news for a company from Finnhub",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"symbol": symbolProperty(),
					"days": map[string]interface{}{
						"type":        "integer",
						"description": "Number of days of news to retrieve (default: 7)",
					},
				},
				"required": []interface{}{"symbol"},
			},
		},
		{
			Name:        ToolStockSentiment,
			Title:       "Stock Sentiment",
			Description: "Analyze market sentiment for a stock based on price performance and news volume",
			InputSchema: symbolOnlySchema(),
		},
	}
}

func symbolProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Stock symbol (e.g., AAPL, MSFT, GOOG)",
	}
}

func symbolOnlySchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"symbol": symbolProperty(),
		},
		"required": []interface{}{"symbol"},
	}
}
