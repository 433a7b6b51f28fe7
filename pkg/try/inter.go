package try

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the normalized error if the operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

// WithElapsed extends WithError with wall-clock measurement support
type WithElapsed[T any] interface {
	WithError[T]
	// Elapsed returns the measured duration and whether one was recorded
	Elapsed() (time.Duration, bool)
}
