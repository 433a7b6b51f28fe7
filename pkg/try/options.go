package try

import (
	"log/slog"
	"time"
)

// RetryPolicy bounds the attempt loop of the retrying executor. Attempts is
// the total attempt budget (1 means a single attempt, no retry); Delay is a
// fixed pause inserted between a failed attempt and the next one.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// Settings is the effective option set of a single executor invocation,
// produced by Apply from defaults, the global configuration and the local
// options, in that order.
type Settings struct {
	LogError  bool
	Logger    *slog.Logger
	OnError   func(error)
	OnFinally func()
	Timing    bool
	Retry     RetryPolicy
	Limit     int
}

// Option configures a single executor invocation.
type Option func(*Settings)

func defaultSettings() Settings {
	return Settings{
		Logger: slog.Default(),
		Retry:  RetryPolicy{Attempts: 1},
	}
}

// Apply merges defaults, the global configuration and the given local
// options. Options supplied locally override global ones; absent options
// never overwrite.
func Apply(opts ...Option) Settings {
	s := defaultSettings()
	for _, opt := range Global() {
		if opt != nil {
			opt(&s)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithLogError controls whether a normalized failure is emitted to the
// logger before the failure result is returned.
func WithLogError(v bool) Option {
	return func(s *Settings) {
		s.LogError = v
	}
}

// WithLogger sets the logging collaborator. It panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("try: logger must not be nil")
	}
	return func(s *Settings) {
		s.Logger = l
	}
}

// WithOnError registers a callback invoked with every normalized failure,
// once per failed attempt. Panics raised by the callback are not recovered
// by the executors.
func WithOnError(fn func(error)) Option {
	return func(s *Settings) {
		s.OnError = fn
	}
}

// WithOnFinally registers a callback invoked exactly once after the outcome
// is determined, on every exit path. Panics raised by the callback are not
// recovered by the executors.
func WithOnFinally(fn func()) Option {
	return func(s *Settings) {
		s.OnFinally = fn
	}
}

// WithTiming enables wall-clock measurement of the operation; the duration
// is stamped on the returned result.
func WithTiming() Option {
	return func(s *Settings) {
		s.Timing = true
	}
}

// WithRetry sets a fixed-count, fixed-delay retry policy for the retrying
// executor. It panics if attempts < 1 or delay is negative.
func WithRetry(attempts int, delay time.Duration) Option {
	if attempts < 1 {
		panic("try: retry attempts must be at least 1")
	}
	if delay < 0 {
		panic("try: retry delay must be non-negative")
	}
	return func(s *Settings) {
		s.Retry = RetryPolicy{Attempts: attempts, Delay: delay}
	}
}

// WithLimit bounds the number of batch operations executing concurrently.
// A limit of zero (the default) means unlimited. It panics if n is negative.
func WithLimit(n int) Option {
	if n < 0 {
		panic("try: limit must be non-negative")
	}
	return func(s *Settings) {
		s.Limit = n
	}
}

// Report emits a normalized failure to the configured logger and error
// callback, honoring LogError. Callback panics are not recovered.
func (s Settings) Report(err error) {
	if s.LogError {
		s.Logger.Error("operation failed", slog.Any("error", err))
	}
	if s.OnError != nil {
		s.OnError(err)
	}
}

// Finish runs the OnFinally hook, if any. Executors defer it on entry so it
// runs on every exit path.
func (s Settings) Finish() {
	if s.OnFinally != nil {
		s.OnFinally()
	}
}
