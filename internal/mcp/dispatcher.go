package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// serverInfo is the static identity advertised by initialize.
var serverInfo = ServerInfo{
	Name:    "stockmcp",
	Title:   "Stock MCP Server with Finnhub Integration",
	Version: "1.0.0",
}

// Dispatcher validates the JSON-RPC envelope, routes by method name and
// encodes the success or error envelope along with the HTTP status the
// transport should use.
type Dispatcher struct {
	registry *Registry
	executor *ToolExecutor
	sessions *SessionStore
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher over the given registry, executor and
// session store.
func NewDispatcher(registry *Registry, executor *ToolExecutor, sessions *SessionStore, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		executor: executor,
		sessions: sessions,
		logger:   logger,
	}
}

// Dispatch handles one raw request body and returns the response envelope
// plus the HTTP status code. No failure escapes this boundary unformatted:
// anything unanticipated becomes a -32603 internal error with a null id.
func (d *Dispatcher) Dispatch(ctx context.Context, body []byte) (resp *Response, status int) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("dispatch_panic", "panic", r)
			resp = NewError(nil, InternalError, internalMessage(r))
			status = http.StatusInternalServerError
		}
	}()

	req, rpcErr, id := ParseRequest(body)
	if rpcErr != nil {
		return &Response{JSONRPC: "2.0", ID: id, Error: rpcErr}, http.StatusBadRequest
	}

	LogMethod(ctx, d.logger, req.Method)

	params := req.Params
	if len(params) == 0 {
		params = json.RawMessage("{}")
	}

	switch req.Method {
	case "initialize":
		return d.handleInitialize(params, req.ID)
	case "resources/list":
		return NewResult(req.ID, map[string]interface{}{"resources": Resources()}), http.StatusOK
	case "resources/read":
		return d.handleResourcesRead(params, req.ID)
	case "tools/list":
		return NewResult(req.ID, map[string]interface{}{"tools": d.registry.Tools()}), http.StatusOK
	case "tools/call":
		return d.handleToolsCall(ctx, params, req.ID)
	case "prompts/list":
		return NewResult(req.ID, map[string]interface{}{"prompts": Prompts()}), http.StatusOK
	default:
		return NewError(req.ID, MethodNotFound, "Method not found: "+req.Method), http.StatusNotFound
	}
}

// handleInitialize negotiates a session. Missing fields default silently;
// this handler never fails.
func (d *Dispatcher) handleInitialize(params json.RawMessage, id interface{}) (*Response, int) {
	var p InitializeParams
	// Malformed params degrade to empty defaults rather than erroring.
	_ = json.Unmarshal(params, &p)

	if p.Capabilities == nil {
		p.Capabilities = map[string]interface{}{}
	}

	sess := d.sessions.Create(p.ProtocolVersion, p.Capabilities)
	d.logger.Info("client_initialized",
		"session_id", sess.ID,
		"protocol_version", p.ProtocolVersion,
	)

	result := InitializeResult{
		ProtocolVersion: p.ProtocolVersion,
		Capabilities: map[string]interface{}{
			"tools":     map[string]interface{}{},
			"resources": map[string]interface{}{},
			"prompts":   map[string]interface{}{},
		},
		ServerInfo: serverInfo,
	}
	return NewResult(id, result), http.StatusOK
}

func (d *Dispatcher) handleResourcesRead(params json.RawMessage, id interface{}) (*Response, int) {
	var p ReadResourceParams
	_ = json.Unmarshal(params, &p)

	content, ok := ReadResource(p.URI)
	if !ok {
		return NewError(id, InvalidParams, "Resource not found: "+p.URI), http.StatusNotFound
	}
	return NewResult(id, content), http.StatusOK
}

func (d *Dispatcher) handleToolsCall(ctx context.Context, params json.RawMessage, id interface{}) (*Response, int) {
	var p CallToolParams
	if err := json.Unmarshal(params, &p); err != nil {
		return NewError(id, InvalidParams, "Invalid tools/call parameters"), http.StatusBadRequest
	}

	symbol, _ := p.Parameters["symbol"].(string)
	LogToolCall(ctx, d.logger, p.Name, symbol)

	result, cerr := d.executor.Execute(ctx, p.Name, p.Parameters)
	if cerr != nil {
		LogToolError(ctx, d.logger, p.Name, cerr.Code, cerr.Message)
		return &Response{JSONRPC: "2.0", ID: id, Error: &cerr.RPCError}, HTTPStatus(cerr.Class)
	}

	return NewResult(id, map[string]interface{}{"result": result}), http.StatusOK
}

func internalMessage(r interface{}) string {
	if err, ok := r.(error); ok {
		return "Internal error: " + err.Error()
	}
	if s, ok := r.(string); ok {
		return "Internal error: " + s
	}
	return "Internal error"
}
