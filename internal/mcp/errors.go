package mcp

import (
	"fmt"
	"net/http"
)

// Validation-class errors carry -32602 but map to different HTTP statuses
// depending on whether they name an unknown identifier (404) or a bad
// parameter (400). ErrorClass disambiguates when encoding the response.
type ErrorClass int

const (
	ClassBadRequest ErrorClass = iota // malformed envelope or invalid parameters
	ClassNotFound                     // unknown method, tool or resource
	ClassInternal                     // uncaught failure
)

// ClassedError is an RPCError tagged with its HTTP error class.
type ClassedError struct {
	RPCError
	Class ErrorClass
}

func (e *ClassedError) Error() string {
	return e.RPCError.Message
}

// BadRequest builds a -32602 validation error mapped to HTTP 400.
func BadRequest(format string, args ...interface{}) *ClassedError {
	return &ClassedError{
		RPCError: RPCError{Code: InvalidParams, Message: fmt.Sprintf(format, args...)},
		Class:    ClassBadRequest,
	}
}

// NotFound builds a -32602 lookup error mapped to HTTP 404.
func NotFound(format string, args ...interface{}) *ClassedError {
	return &ClassedError{
		RPCError: RPCError{Code: InvalidParams, Message: fmt.Sprintf(format, args...)},
		Class:    ClassNotFound,
	}
}

// Internal builds a -32603 execution error mapped to HTTP 500.
func Internal(format string, args ...interface{}) *ClassedError {
	return &ClassedError{
		RPCError: RPCError{Code: InternalError, Message: fmt.Sprintf(format, args...)},
		Class:    ClassInternal,
	}
}

// HTTPStatus maps an error class to the HTTP status accompanying the
// JSON-RPC error body. Success is always 200.
func HTTPStatus(class ErrorClass) int {
	switch class {
	case ClassBadRequest:
		return http.StatusBadRequest
	case ClassNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
