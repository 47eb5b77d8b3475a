package internal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrNotOrderOwner   = errors.New("order belongs to another user")
	ErrOrderNotPayable = errors.New("order is not awaiting payment")
	ErrNoPaymentID     = errors.New("no payment is associated with the order")

	ErrInvalidToken = errors.New("auth token does not match the requesting user")
)

// ValidationError names the request fields that were missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// ProcessorError is a failed call to the payment processor. It keeps the
// upstream HTTP status and raw body for diagnostics.
type ProcessorError struct {
	StatusCode int
	Body       string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("processor returned %d: %s", e.StatusCode, e.Body)
}
