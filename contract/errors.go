package contract

import "fmt"

// ErrKind is the wire symbol a failed request is surfaced under. Every
// violated precondition aborts the request with exactly one of these; none
// are swallowed or retried.
type ErrKind string

const (
	ErrUnauthorized          ErrKind = "unauthorized"
	ErrWindowClosed          ErrKind = "window_closed"
	ErrAlreadyRegistered     ErrKind = "already_registered"
	ErrAlreadyParticipated   ErrKind = "already_participated"
	ErrAllocationExceeded    ErrKind = "allocation_exceeded"
	ErrInsufficientInventory ErrKind = "insufficient_inventory"
	ErrZeroAmount            ErrKind = "zero_amount"
	ErrNotFound              ErrKind = "not_found"
	ErrAlreadyWithdrawn      ErrKind = "already_withdrawn"
	ErrInvalidConfiguration  ErrKind = "invalid_configuration"
	ErrExternalCallFailed    ErrKind = "external_call_failed"
	ErrInsufficientStake     ErrKind = "insufficient_stake"
)

// SaleError pairs a taxonomy kind with a human-readable detail line.
type SaleError struct {
	Kind ErrKind
	Msg  string
}

func (e *SaleError) Error() string {
	return string(e.Kind) + ": " + e.Msg
}

// fail builds a SaleError without formatting overhead.
func fail(kind ErrKind, msg string) *SaleError {
	return &SaleError{Kind: kind, Msg: msg}
}

// failf builds a SaleError from a format string.
func failf(kind ErrKind, format string, args ...any) *SaleError {
	return &SaleError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
