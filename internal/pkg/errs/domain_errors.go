package errs

import "errors"

// Sentinel errors the delivery pipelines branch on
var (
	ErrPostingNotFound = errors.New("posting not found")

	// ErrRegistrationGone means the push channel is permanently dead and
	// must be dropped; ErrSenderUnauthorized means our VAPID credentials
	// were rejected, an operational problem that clears nothing.
	ErrRegistrationGone   = errors.New("push registration permanently invalid")
	ErrSenderUnauthorized = errors.New("sender credentials rejected")

	ErrInvalidFrequency = errors.New("invalid digest frequency")
)
