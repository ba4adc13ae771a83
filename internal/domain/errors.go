package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal         ErrorCode = "INTERNAL_ERROR"
	CodeValidation       ErrorCode = "VALIDATION_ERROR"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// Text-generation collaborator errors
	CodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
	CodeSchemaViolation   ErrorCode = "SCHEMA_VIOLATION"
	CodeCollaborator      ErrorCode = "COLLABORATOR_UNAVAILABLE"

	// Field-level validation detail codes
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewPermissionDeniedError(message string) *DomainError {
	return NewError(CodePermissionDenied, message, nil)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// NewMalformedResponseError is returned when collaborator output cannot be
// parsed as the expected structure. The raw text is retained for diagnostics.
func NewMalformedResponseError(message string, raw string) *DomainError {
	return &DomainError{
		Code:    CodeMalformedResponse,
		Message: message,
		Context: map[string]interface{}{"raw": raw},
	}
}

// NewSchemaViolationError is returned when collaborator output parsed but is
// missing a required field or has the wrong container type for one.
func NewSchemaViolationError(message string) *DomainError {
	return NewError(CodeSchemaViolation, message, nil)
}

func NewCollaboratorError(message string, cause error) *DomainError {
	return NewError(CodeCollaborator, message, cause)
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == code
}
