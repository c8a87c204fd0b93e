package domain

import "errors"

// PersistenceErrorKind enumerates durable store failures.
type PersistenceErrorKind int

const (
	PersistenceNone PersistenceErrorKind = iota
	PersistenceLoadingError
	PersistenceSaveError
)

// String returns the kind name.
func (k PersistenceErrorKind) String() string {
	switch k {
	case PersistenceNone:
		return "none"
	case PersistenceLoadingError:
		return "loadingError"
	case PersistenceSaveError:
		return "saveError"
	default:
		return "unrecognized"
	}
}

// PersistenceError carries the kind and the underlying description.
// Two values are equal when kind and description match.
type PersistenceError struct {
	Kind        PersistenceErrorKind
	Description string
}

// NewLoadingError reports that the store could not be opened.
func NewLoadingError(description string) *PersistenceError {
	return &PersistenceError{Kind: PersistenceLoadingError, Description: description}
}

// NewSaveError reports a failed commit.
func NewSaveError(description string) *PersistenceError {
	return &PersistenceError{Kind: PersistenceSaveError, Description: description}
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	if e.Description == "" {
		return "persistence: " + e.Kind.String()
	}

	return "persistence: " + e.Kind.String() + ": " + e.Description
}

// Is compares structurally against another *PersistenceError.
func (e *PersistenceError) Is(target error) bool {
	t, ok := target.(*PersistenceError)
	if !ok {
		return false
	}

	return e.Kind == t.Kind && e.Description == t.Description
}

// Unwrap exposes ErrUnavailable for both failure kinds.
func (e *PersistenceError) Unwrap() error {
	if e.Kind == PersistenceNone {
		return nil
	}

	return ErrUnavailable
}

// IsSaveError reports whether err is a commit failure of any description.
func IsSaveError(err error) bool {
	var pe *PersistenceError

	return errors.As(err, &pe) && pe.Kind == PersistenceSaveError
}

// IsLoadingError reports whether err is a store open failure.
func IsLoadingError(err error) bool {
	var pe *PersistenceError

	return errors.As(err, &pe) && pe.Kind == PersistenceLoadingError
}

// IsFetchError reports whether err is a quote fetch failure and returns it.
func IsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}

	return nil, false
}
