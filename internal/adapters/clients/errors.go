// Package clients provides the instrumented HTTP client used for downstream services.
package clients

import "errors"

// Client errors are infrastructure failures. Callers translate them into
// domain errors.
var (
	// ErrCircuitOpen is returned without contacting the downstream while the
	// breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrRequestFailed wraps a transport failure where no response arrived.
	ErrRequestFailed = errors.New("downstream request failed")

	// ErrInvalidBaseURL is returned by New for a relative or unparsable base URL.
	ErrInvalidBaseURL = errors.New("invalid base url")

	// ErrInvalidPath is returned when a request path cannot be parsed.
	ErrInvalidPath = errors.New("invalid request path")
)
