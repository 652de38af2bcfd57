package domain

import (
	"errors"
	"fmt"
)

var ErrSessionNotFound = errors.New("session not found")

// ValidationError carries every failing field of the current step so the
// caller can show all problems inline at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// StateError signals an illegal wizard transition, e.g. submitting contact
// details before a booking exists.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string {
	return e.Msg
}

// InvalidTierError signals a (duration, tier) pair the price table does not
// define.
type InvalidTierError struct {
	Duration DurationClass
	Tier     TierCode
}

func (e *InvalidTierError) Error() string {
	return fmt.Sprintf("tier %s is not available for %s", e.Tier, e.Duration)
}

// BackendUnavailableError means the booking backend gave no usable response
// at all. Retryable; the wizard stays on its current step.
type BackendUnavailableError struct {
	Op  string
	Err error
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("booking backend unreachable during %s: %v", e.Op, e.Err)
}

func (e *BackendUnavailableError) Unwrap() error {
	return e.Err
}

// BackendRejectedError carries a structured error payload from the backend
// verbatim, together with its machine code when one was present.
type BackendRejectedError struct {
	Op      string
	Code    string
	Message string
}

func (e *BackendRejectedError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s rejected (%s): %s", e.Op, e.Code, e.Message)
	}

	return fmt.Sprintf("%s rejected: %s", e.Op, e.Message)
}

// GatewayLoadError means the payment widget script could not be fetched.
type GatewayLoadError struct {
	Err error
}

func (e *GatewayLoadError) Error() string {
	return fmt.Sprintf("failed to load payment gateway: %v", e.Err)
}

func (e *GatewayLoadError) Unwrap() error {
	return e.Err
}

// PaymentNotConfirmedError is the one failure that must never look generic:
// the gateway reported a captured payment but the backend refused to confirm
// it, so money may have moved without a finalized booking.
type PaymentNotConfirmedError struct {
	BookingID string
	Err       error
}

func (e *PaymentNotConfirmedError) Error() string {
	return fmt.Sprintf("payment captured but confirmation failed for booking %s: %v", e.BookingID, e.Err)
}

func (e *PaymentNotConfirmedError) Unwrap() error {
	return e.Err
}
