// Package errors provides the standardized error taxonomy for the agent
// dispatch layers. Only the HTTP gateway converts these into status codes;
// the action adapter and its handlers convert them into diagnostic text.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeClientInput      ErrorCode = "CLIENT_INPUT"
	ErrCodeConfiguration    ErrorCode = "CONFIGURATION"
	ErrCodeUpstream         ErrorCode = "UPSTREAM"
	ErrCodeUnknownFunction  ErrorCode = "UNKNOWN_FUNCTION"
	ErrCodeMissingParameter ErrorCode = "MISSING_PARAMETER"
	ErrCodeInternal         ErrorCode = "INTERNAL"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// PublicMessage is the text the gateway reports to callers. Details carries
// the underlying cause when one exists; the generic Message otherwise.
func (e *StandardError) PublicMessage() string {
	if e.Details != "" {
		return e.Details
	}
	return e.Message
}

// HTTPStatus maps the error code to the status the gateway must report.
// Client input problems are the caller's fault; everything else is ours.
func (e *StandardError) HTTPStatus() int {
	if e.Code == ErrCodeClientInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ==========================
// 2. Error Constructors
// ==========================

// NewClientInputError creates a 400-mapped error with a caller-facing message.
func NewClientInputError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeClientInput,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigurationError creates a 500-mapped error raised before any external
// call is attempted.
func NewConfigurationError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfiguration,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamError wraps a failure from an external collaborator (specialist
// runtime, portfolio API, permissions API).
func NewUpstreamError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstream,
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownFunctionError is produced by the adapter for unregistered
// function names. It never crosses the adapter boundary as an error value.
func NewUnknownFunctionError(functionName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownFunction,
		Message:   fmt.Sprintf("Unknown function: %s", functionName),
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingParameterError is produced by the adapter when a handler's
// required parameter is absent or empty.
func NewMissingParameterError(param string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingParameter,
		Message:   fmt.Sprintf("Missing '%s' parameter", param),
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// Normalize ensures we always have a StandardError to report.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}
