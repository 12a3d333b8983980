package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal   ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest ErrorCode = "BAD_REQUEST"
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeConflict   ErrorCode = "CONFLICT"

	// Generation pipeline errors
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	CodeEmptyResponse      ErrorCode = "EMPTY_RESPONSE"
	CodeExtractionFailed   ErrorCode = "EXTRACTION_FAILED"
	CodeMalformedJSON      ErrorCode = "MALFORMED_JSON"
	CodeSchemaMismatch     ErrorCode = "SCHEMA_MISMATCH"
)

// DomainError represents a domain-specific error.
// Raw holds model output or other diagnostics that must stay server-side.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Raw     string
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON never exposes Cause or Raw.
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

func NewBadRequestError(message string) *DomainError {
	return NewError(CodeBadRequest, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewConflictError(message string) *DomainError {
	return NewError(CodeConflict, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewServiceUnavailableError(err error) *DomainError {
	return NewError(CodeServiceUnavailable, "text generation service unavailable", err)
}

func NewEmptyResponseError() *DomainError {
	return NewError(CodeEmptyResponse, "text generation service returned no text", nil)
}

func NewExtractionFailedError(message, raw string) *DomainError {
	return &DomainError{Code: CodeExtractionFailed, Message: message, Raw: raw}
}

func NewMalformedJSONError(raw string, err error) *DomainError {
	return &DomainError{Code: CodeMalformedJSON, Message: "matched substring is not valid JSON", Cause: err, Raw: raw}
}

func NewSchemaMismatchError(message string, err error) *DomainError {
	return NewError(CodeSchemaMismatch, message, err)
}

// CodeOf returns the code of the first DomainError in err's chain,
// or CodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
