package service

import (
	"time"

	"github.com/google/uuid"
)

type runtime struct {
	now   func() time.Time
	newID func() string
}

func newRuntime(opts []Option) runtime {
	rt := runtime{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&rt)
	}
	return rt
}

type Option func(*runtime)

// WithClock overrides the wall clock used for timestamps and overdue checks.
func WithClock(now func() time.Time) Option {
	return func(rt *runtime) {
		rt.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(rt *runtime) {
		rt.newID = newID
	}
}
