package mcp

import (
	"encoding/json"
)

// ParseRequest validates a raw request body as a JSON-RPC 2.0 envelope.
//
// A body that is not a JSON object, or whose jsonrpc tag is not exactly
// "2.0", is a protocol error (-32600). The request id is extracted
// best-effort so that even malformed envelopes echo it back when possible.
func ParseRequest(body []byte) (*Request, *RPCError, interface{}) {
	// Probe the top-level shape first: only objects are valid envelopes.
	var probe interface{}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, &RPCError{Code: InvalidRequest, Message: "Invalid Request"}, nil
	}
	obj, ok := probe.(map[string]interface{})
	if !ok {
		return nil, &RPCError{Code: InvalidRequest, Message: "Invalid Request"}, nil
	}

	id := obj["id"]

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &RPCError{Code: InvalidRequest, Message: "Invalid Request"}, id
	}
	if req.JSONRPC != "2.0" {
		return nil, &RPCError{Code: InvalidRequest, Message: "Invalid Request"}, id
	}
	return &req, nil, id
}

// NewResult creates a JSON-RPC success response.
func NewResult(id interface{}, result interface{}) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}

// NewError creates a JSON-RPC error response.
func NewError(id interface{}, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
		},
	}
}
