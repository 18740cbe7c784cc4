package mcp

// Prompts returns the static prompt template catalog.
func Prompts() []Prompt {
	return []Prompt{
		{
			Name:        "greeting",
			Title:       "Greeting Prompt",
			Description: "A simple greeting prompt",
			PromptText:  "Hello! How can I assist you today?",
			ParameterSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "The name of the person to greet",
					},
				},
			},
		},
		{
			Name:        "data-analysis",
			Title:       "Data Analysis Helper",
			Description: "A prompt to help with data analysis tasks",
			PromptText:  "I'll help you analyze your data. I can interpret {data_type} data and provide insights on {analysis_type}.",
			ParameterSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"data_type": map[string]interface{}{
						"type":        "string",
						"description": "The type of data to analyze (e.g., CSV, JSON, etc.)",
					},
					"analysis_type": map[string]interface{}{
						"type":        "string",
						"description": "The type of analysis to perform (e.g., trend analysis, statistical summary, etc.)",
					},
				},
				"required": []interface{}{"data_type", "analysis_type"},
			},
		},
		{
			Name:        "stock-analysis",
			Title:       "Stock Analysis Helper",
			Description: "A prompt to help with stock analysis tasks",
			PromptText:  "I'll help you analyze {symbol} stock data. I can provide information about current price, company profile, and recent news.",
			ParameterSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"symbol": map[string]interface{}{
						"type":        "string",
						"description": "The stock symbol to analyze (e.g., AAPL, MSFT, GOOG)",
					},
				},
				"required": []interface{}{"symbol"},
			},
		},
	}
}
