package models

import (
	"fmt"
	"net/http"
)

// NotFoundError is returned when an entity id is absent. It is never retryable.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// ValidationError indicates malformed input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// TransientError is an injected failure. State is left untouched, so retrying is always safe.
type TransientError struct {
	Code    int
	Message string
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("simulated failure (%d): %s", e.Code, e.Message)
}

func NewTransientError(code int, message string) *TransientError {
	if code == 0 {
		code = http.StatusInternalServerError
	}
	return &TransientError{Code: code, Message: message}
}

// StoreError wraps a failure of the underlying storage.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure on %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
