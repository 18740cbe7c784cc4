package mcp

import "encoding/json"

// Request represents a JSON-RPC 2.0 request envelope.
type Request struct {
	JSONRPC string          `json:"jsonrpc"` // Always "2.0"
	ID      interface{}     `json:"id"`      // String, number or null; echoed verbatim
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response represents a JSON-RPC 2.0 response envelope.
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *RPCError   `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC 2.0 error object.
type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Error implements the error interface for RPCError.
func (e *RPCError) Error() string {
	return e.Message
}

// Standard JSON-RPC error codes.
const (
	ParseError     = -32700 // Invalid JSON
	InvalidRequest = -32600 // Invalid Request object
	MethodNotFound = -32601 // Method does not exist
	InvalidParams  = -32602 // Invalid method parameters
	InternalError  = -32603 // Internal JSON-RPC error
)

// Tool describes one callable tool in the static catalog.
type Tool struct {
	Name        string                 `json:"name"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Resource describes one entry in the static resource catalog.
type Resource struct {
	URI         string `json:"uri"`
	MimeType    string `json:"mimeType"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Prompt describes one prompt template. Purely descriptive metadata;
// the server never executes prompts.
type Prompt struct {
	Name            string                 `json:"name"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	PromptText      string                 `json:"promptText"`
	ParameterSchema map[string]interface{} `json:"parameterSchema"`
}

// CallToolParams represents parameters for the tools/call method.
type CallToolParams struct {
	Name       string                 `json:"name"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
}

// InitializeParams represents parameters for the initialize method.
// clientInfo is accepted but not persisted.
type InitializeParams struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	Capabilities    map[string]interface{} `json:"capabilities"`
	ClientInfo      map[string]interface{} `json:"clientInfo"`
}

// ReadResourceParams represents parameters for the resources/read method.
type ReadResourceParams struct {
	URI string `json:"uri"`
}

// ServerInfo is the static server identity returned by initialize.
type ServerInfo struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Version string `json:"version"`
}

// InitializeResult is the result of a successful initialize call.
type InitializeResult struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	Capabilities    map[string]interface{} `json:"capabilities"`
	ServerInfo      ServerInfo             `json:"serverInfo"`
}

// ReadResourceResult is the result of a successful resources/read call.
type ReadResourceResult struct {
	Content  string `json:"content"`
	MimeType string `json:"mimeType"`
}
