// Package errors provides structured error handling with stable codes
// and HTTP status mapping for the API surface.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode identifies an error class across layers.
type ErrorCode string

const (
	// Client errors (4xx)
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeForbidden        ErrorCode = "FORBIDDEN"
	CodeTooManyRequests  ErrorCode = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternal             ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Business codes
	CodeItemNotFound   ErrorCode = "ITEM_NOT_FOUND"
	CodeRecipeNotFound ErrorCode = "RECIPE_NOT_FOUND"
	CodeInvalidInput   ErrorCode = "INVALID_INPUT"
)

// AppError is an error with a stable code, a human message and an
// optional wrapped cause.
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Cause    error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// StatusCode maps the error code to an HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeItemNotFound, CodeRecipeNotFound:
		return http.StatusNotFound
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata attaches a key/value pair for structured responses.
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause attaches the underlying error.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates an application error.
func New(code ErrorCode, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// Constructors for the common cases.

func NewBadRequest(message string) *AppError {
	return New(CodeBadRequest, message, "")
}

func NewValidation(details string) *AppError {
	return New(CodeValidationFailed, "Validation failed", details)
}

func NewInvalidInput(details string) *AppError {
	return New(CodeInvalidInput, "Invalid input", details)
}

func NewNotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), "")
}

func NewItemNotFound(itemID string) *AppError {
	return New(CodeItemNotFound, "Food item not found",
		fmt.Sprintf("Food item %s does not exist", itemID)).
		WithMetadata("item_id", itemID)
}

func NewRecipeNotFound(recipeID int64) *AppError {
	return New(CodeRecipeNotFound, "Recipe not found",
		fmt.Sprintf("Recipe %d does not exist", recipeID)).
		WithMetadata("recipe_id", recipeID)
}

func NewDatabase(operation string, cause error) *AppError {
	return New(CodeDatabaseError, "Database operation failed",
		fmt.Sprintf("Failed to %s", operation)).WithCause(cause)
}

func NewExternalService(service string, cause error) *AppError {
	return New(CodeExternalServiceError, "External service error",
		fmt.Sprintf("Failed to communicate with %s", service)).WithCause(cause)
}

func NewInternal(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return New(CodeInternal, message, "")
}

// Wrap turns an arbitrary error into an AppError, passing AppErrors
// through unchanged.
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return NewInternal(message).WithCause(err)
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the code, defaulting to CodeInternal.
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails carries the serializable part of an AppError.
type ErrorDetails struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp int64                  `json:"timestamp"`
}

// ToErrorResponse builds the API envelope for an AppError.
func ToErrorResponse(err *AppError, requestID string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetails{
			Code:      err.Code,
			Message:   err.Message,
			Details:   err.Details,
			Metadata:  err.Metadata,
			RequestID: requestID,
			Timestamp: time.Now().Unix(),
		},
	}
}
