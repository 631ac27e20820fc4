package platform

import (
	"context"

	"github.com/mj1618/wsicons/internal/model"
)

// TreeSource fetches a full snapshot of the compositor layout.
type TreeSource interface {
	GetTree(ctx context.Context) (*model.Node, error)
}

// Commander runs a command on the compositor and reports whether it
// succeeded.
type Commander interface {
	RunCommand(ctx context.Context, command string) error
}

// Subscriber opens an event stream for the given categories.
type Subscriber interface {
	Subscribe(ctx context.Context, events ...EventType) (EventStream, error)
}

// EventStream delivers events in arrival order, one at a time.
type EventStream interface {
	// Next blocks until the next event arrives. It returns an error when
	// the stream breaks or is closed; the stream is unusable afterwards.
	Next(ctx context.Context) (Event, error)
	Close() error
}

// Versioner reports the compositor version, for diagnostics.
type Versioner interface {
	CompositorVersion(ctx context.Context) (string, error)
}
