package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"stockmcp/internal/mcp"
)

// MCPHandler serves the JSON-RPC endpoint at POST /mcp. Each request body
// carries one envelope; the response body is the matching envelope and the
// HTTP status communicates the error class.
type MCPHandler struct {
	dispatcher *mcp.Dispatcher
	logger     *slog.Logger
}

// NewMCPHandler creates the JSON-RPC endpoint handler.
func NewMCPHandler(dispatcher *mcp.Dispatcher, logger *slog.Logger) *MCPHandler {
	return &MCPHandler{
		dispatcher: dispatcher,
		logger:     logger.With("handler", "mcp"),
	}
}

// ServeHTTP handles one JSON-RPC request.
func (h *MCPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("body_read_failed", "error", err)
		writeResponse(w, mcp.NewError(nil, mcp.InvalidRequest, "Invalid Request"), http.StatusBadRequest)
		return
	}

	resp, status := h.dispatcher.Dispatch(r.Context(), body)
	writeResponse(w, resp, status)
}

func writeResponse(w http.ResponseWriter, resp *mcp.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
