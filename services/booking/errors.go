package booking

import (
	"errors"
	"fmt"
)

// ValidationError is an input error blocked at the wizard gate. It is
// surfaced inline to the caller and never forwarded to a collaborator.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// CollaboratorError wraps a failed call to a remote collaborator. The
// draft survives it; the user may retry manually.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

var (
	// ErrUnauthenticated means no authenticated user is attached to the
	// request. No draft exists before authentication succeeds.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrDraftNotFound means the draft expired, was cancelled, or never existed.
	ErrDraftNotFound = errors.New("booking draft not found or expired")

	// ErrWrongStep means the requested operation is not legal in the
	// draft's current wizard step.
	ErrWrongStep = errors.New("operation not allowed in current wizard step")

	// ErrUnitNotChosen means the seat grid was confirmed without an
	// explicit unit selection. Selection is mandatory.
	ErrUnitNotChosen = errors.New("a concrete unit must be selected explicitly")

	// ErrInvalidCoupon means the coupon code was rejected; the draft's
	// discount is left unchanged.
	ErrInvalidCoupon = errors.New("invalid coupon code")
)
