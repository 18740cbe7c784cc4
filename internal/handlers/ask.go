package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"stockmcp/internal/mcp"
	"stockmcp/internal/nlp"
)

// AskHandler serves the natural-language endpoint at POST /ask.
type AskHandler struct {
	frontend *nlp.FrontEnd
	logger   *slog.Logger
}

// NewAskHandler creates the natural-language endpoint handler.
func NewAskHandler(frontend *nlp.FrontEnd, logger *slog.Logger) *AskHandler {
	return &AskHandler{
		frontend: frontend,
		logger:   logger.With("handler", "ask"),
	}
}

type askRequest struct {
	Query string `json:"query"`
}

type askError struct {
	Error string `json:"error"`
}

// ServeHTTP handles one free-text query.
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if !h.frontend.Available() {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(askError{Error: "Natural language queries are unavailable: no completion service is configured"})
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(askError{Error: "A non-empty 'query' field is required"})
		return
	}

	answer, err := h.frontend.Ask(r.Context(), req.Query)
	if err != nil {
		h.logger.Error("ask_failed", "query", req.Query, "error", err)
		status := http.StatusInternalServerError
		if cerr, ok := err.(*mcp.ClassedError); ok {
			status = mcp.HTTPStatus(cerr.Class)
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(askError{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(answer)
}
