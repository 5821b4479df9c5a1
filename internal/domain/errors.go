package domain

import "errors"

// Error taxonomy shared across services. Handlers map these onto HTTP
// statuses; the webhook contract is 200 for no-ops, 400 for non-retryable
// input errors and a retryable status for gateway failures.
var (
	// ErrValidation marks malformed input. Non-retryable.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidState marks a transition that is not legal from the
	// entity's current state. Non-retryable.
	ErrInvalidState = errors.New("invalid state transition")
	// ErrAlreadyDelivered is returned by strict-mode delivery acceptance
	// when the order is already delivered.
	ErrAlreadyDelivered = errors.New("order already delivered")
	// ErrNotFound marks a referenced order or subscription missing
	// locally. Webhook handling treats it as a no-op.
	ErrNotFound = errors.New("not found")
	// ErrGateway marks a failed billing-provider call. Retryable.
	ErrGateway = errors.New("payment gateway error")
	// ErrBadEvent marks an unparseable webhook payload. Non-retryable.
	ErrBadEvent = errors.New("bad webhook event")
)
