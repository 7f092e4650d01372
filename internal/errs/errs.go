package errs

import "errors"

// Sentinel errors shared across the resolver, the aggregator and the API
// layer. Callers classify with errors.Is after any amount of %w wrapping.
var (
	// ErrSourceUnavailable marks a network, auth or parse failure from an
	// upstream source. Always recoverable by falling back to the next stage.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrInvalidArgument marks a malformed caller request. Surfaced, never
	// retried.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotConfigured marks an operation that needs a source with no
	// credentials or URL configured.
	ErrNotConfigured = errors.New("not configured")

	// ErrInvalidCredential marks a service-account blob that failed
	// structural validation.
	ErrInvalidCredential = errors.New("invalid credential")
)
