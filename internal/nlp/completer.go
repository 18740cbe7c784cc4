// Package nlp maps free-text queries onto the server's financial tools via
// an external completion service with function calling.
package nlp

import (
	"context"
	"encoding/json"
	"fmt"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

// FunctionDef declares one callable function signature to the model.
type FunctionDef struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// Selection is the function the model chose, with its extracted arguments.
type Selection struct {
	Name      string
	Arguments map[string]interface{}
}

// Completer is the completion-with-function-calling capability the front
// end consumes. A nil Selection with nil error means the model selected no
// function.
type Completer interface {
	SelectFunction(ctx context.Context, systemPrompt, query string, fns []FunctionDef) (*Selection, error)
}

// OpenAICompleter implements Completer with the OpenAI chat completions API.
type OpenAICompleter struct {
	client oai.Client
	model  string
}

// NewOpenAICompleter constructs an OpenAI-backed completer.
func NewOpenAICompleter(apiKey, model string) (*OpenAICompleter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("nlp: apiKey must not be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("nlp: model must not be empty")
	}

	client := oai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAICompleter{client: client, model: model}, nil
}

// SelectFunction implements Completer. At most the first requested tool
// call is honored.
func (c *OpenAICompleter) SelectFunction(ctx context.Context, systemPrompt, query string, fns []FunctionDef) (*Selection, error) {
	params := oai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(systemPrompt),
			oai.UserMessage(query),
		},
	}

	for _, fn := range fns {
		params.Tools = append(params.Tools, oai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        fn.Name,
				Description: param.NewOpt(fn.Description),
				Parameters:  shared.FunctionParameters(fn.Parameters),
			},
		})
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("nlp: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("nlp: empty choices in response")
	}

	toolCalls := resp.Choices[0].Message.ToolCalls
	if len(toolCalls) == 0 {
		return nil, nil
	}

	tc := toolCalls[0]
	args := map[string]interface{}{}
	if tc.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return nil, fmt.Errorf("nlp: parse extracted arguments: %w", err)
		}
	}

	return &Selection{Name: tc.Function.Name, Arguments: args}, nil
}
