package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Promotion pipeline errors
	ErrCategoryNotMigrated ErrorCode = "CATEGORY_NOT_MIGRATED"
	ErrDuplicateContent    ErrorCode = "DUPLICATE_CONTENT"
	ErrUnauthenticated     ErrorCode = "UNAUTHENTICATED"
	ErrStore               ErrorCode = "STORE_ERROR"
	ErrPartialBatchFailure ErrorCode = "PARTIAL_BATCH_FAILURE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Err
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
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

// NewStoreError wraps a failed store operation, surfacing the underlying
// message verbatim.
func NewStoreError(message string, err error) *DomainError {
	return NewError(ErrStore, message, err)
}

func NewCategoryNotMigratedError(categoryName string) *DomainError {
	return NewError(ErrCategoryNotMigrated,
		fmt.Sprintf("category %q has not been migrated to production", categoryName), nil)
}

func NewDuplicateContentError(questionText string) *DomainError {
	return NewError(ErrDuplicateContent,
		fmt.Sprintf("a production question with the same text already exists: %q", Truncate(questionText, 60)), nil)
}

func NewUnauthenticatedError() *DomainError {
	return NewError(ErrUnauthenticated, "no authenticated caller for production write", nil)
}

func NewPartialBatchFailureError(message string) *DomainError {
	return NewError(ErrPartialBatchFailure, message, nil)
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
// Used to keep question-text prefixes readable in aggregated reports.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
