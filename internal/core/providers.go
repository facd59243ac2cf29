package core

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is the only failure a Delegate is allowed to surface.
// Transport errors, timeouts and malformed responses all collapse to it,
// and the router answers with a local fallback instead.
var ErrUnavailable = errors.New("delegate unavailable")

// Delegate is the boundary to the external free-text responder. The
// history slice is read-only for the implementation.
type Delegate interface {
	Complete(ctx context.Context, prompt string, history []Turn) (string, error)
}

// Clock abstracts the time source so routing stays testable.
type Clock interface {
	Now() time.Time
}
