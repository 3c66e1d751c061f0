package report

import "errors"

var (
	// ErrValidation marks a request rejected before any side effect.
	ErrValidation = errors.New("invalid input")

	// ErrNotConfigured marks missing server email configuration.
	ErrNotConfigured = errors.New("email delivery not configured")

	// ErrNotFound marks a missing submission.
	ErrNotFound = errors.New("submission not found")
)
