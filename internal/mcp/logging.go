package mcp

import (
	"context"
	"log/slog"
)

// LogToolCall logs a tools/call invocation with structured fields.
func LogToolCall(ctx context.Context, logger *slog.Logger, tool string, symbol string) {
	logger.InfoContext(ctx, "tool_call",
		"component", "dispatcher",
		"tool_name", tool,
		"symbol", symbol,
	)
}

// LogToolError logs a failed tool invocation.
func LogToolError(ctx context.Context, logger *slog.Logger, tool string, errorCode int, errorMsg string) {
	logger.ErrorContext(ctx, "tool_call_error",
		"component", "dispatcher",
		"tool_name", tool,
		"error_code", errorCode,
		"error_message", errorMsg,
	)
}

// LogMethod logs a dispatched JSON-RPC method.
func LogMethod(ctx context.Context, logger *slog.Logger, method string) {
	logger.InfoContext(ctx, "mcp_request",
		"component", "dispatcher",
		"method", method,
	)
}
