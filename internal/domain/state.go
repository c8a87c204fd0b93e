package domain

// FetchStatus is the phase of a load driven by a caller.
type FetchStatus int

const (
	StatusNotAvailable FetchStatus = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

// String returns the status name.
func (s FetchStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "notAvailable"
	}
}

// FetchState pairs a status with the value on success or the error on failure.
type FetchState[T any] struct {
	Status FetchStatus
	Value  T
	Err    error
}

// Loading returns the loading state.
func Loading[T any]() FetchState[T] {
	return FetchState[T]{Status: StatusLoading}
}

// Succeeded returns a success state carrying v.
func Succeeded[T any](v T) FetchState[T] {
	return FetchState[T]{Status: StatusSuccess, Value: v}
}

// Failed returns a failure state carrying err.
func Failed[T any](err error) FetchState[T] {
	return FetchState[T]{Status: StatusFailure, Err: err}
}
