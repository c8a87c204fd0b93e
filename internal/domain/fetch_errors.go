package domain

import (
	"fmt"
)

// FetchErrorKind enumerates failures of the quote-of-the-day fetch.
type FetchErrorKind int

const (
	FetchTransportOffline FetchErrorKind = iota + 1
	FetchInvalidURL
	FetchInvalidStatusCode
	FetchInvalidData
	FetchUnknown
)

// String returns the kind name.
func (k FetchErrorKind) String() string {
	switch k {
	case FetchTransportOffline:
		return "transportOffline"
	case FetchInvalidURL:
		return "invalidURL"
	case FetchInvalidStatusCode:
		return "invalidStatusCode"
	case FetchInvalidData:
		return "invalidData"
	case FetchUnknown:
		return "unknown"
	default:
		return "unrecognized"
	}
}

// FetchError is a structurally comparable fetch failure.
// StatusCode is only meaningful for FetchInvalidStatusCode and
// Description only for FetchUnknown.
type FetchError struct {
	Kind        FetchErrorKind
	StatusCode  int
	Description string
}

// Values for the payload-free kinds.
var (
	ErrTransportOffline = &FetchError{Kind: FetchTransportOffline}
	ErrInvalidURL       = &FetchError{Kind: FetchInvalidURL}
	ErrInvalidData      = &FetchError{Kind: FetchInvalidData}
)

// NewInvalidStatusCode creates an invalidStatusCode error carrying code.
func NewInvalidStatusCode(code int) *FetchError {
	return &FetchError{Kind: FetchInvalidStatusCode, StatusCode: code}
}

// NewUnknownFetchError wraps an opaque failure by its description.
func NewUnknownFetchError(description string) *FetchError {
	return &FetchError{Kind: FetchUnknown, Description: description}
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchInvalidStatusCode:
		return fmt.Sprintf("quote fetch: invalid status code %d", e.StatusCode)
	case FetchUnknown:
		return "quote fetch: unknown error: " + e.Description
	default:
		return "quote fetch: " + e.Kind.String()
	}
}

// Equal compares by kind and the kind's own payload.
func (e *FetchError) Equal(other *FetchError) bool {
	if e == nil || other == nil {
		return e == other
	}

	if e.Kind != other.Kind {
		return false
	}

	switch e.Kind {
	case FetchInvalidStatusCode:
		return e.StatusCode == other.StatusCode
	case FetchUnknown:
		return e.Description == other.Description
	default:
		return true
	}
}

// Is makes errors.Is compare structurally against another *FetchError.
func (e *FetchError) Is(target error) bool {
	t, ok := target.(*FetchError)
	if !ok {
		return false
	}

	return e.Equal(t)
}

// Unwrap maps the kind onto the generic domain sentinels.
func (e *FetchError) Unwrap() error {
	switch e.Kind {
	case FetchInvalidData:
		return ErrValidation
	case FetchUnknown:
		return nil
	default:
		return ErrUnavailable
	}
}
