package apperrors

import (
	"errors"
	"fmt"

	"valfantasy/pkg/fantasy"
)

// Sentinel errors shared by the services.
// No error here is fatal to the process, every failure is scoped to a
// single request and reported to the caller as a typed result.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// ValidationError carries a rejected roster verdict to the transport layer.
type ValidationError struct {
	Verdict fantasy.Verdict
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("roster validation failed: %s", e.Verdict)
}

// NewValidation wraps a rejecting verdict into an error.
func NewValidation(verdict fantasy.Verdict) *ValidationError {
	return &ValidationError{Verdict: verdict}
}

// AsValidation extracts a ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation, true
	}
	return nil, false
}
