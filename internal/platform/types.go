package platform

import (
	"fmt"
	"strings"
)

// EventType is a subscribable event category.
type EventType string

const (
	EventWorkspace EventType = "workspace"
	EventWindow    EventType = "window"
)

// ParseEventTypes converts a comma-separated flag value to event types.
func ParseEventTypes(s string) ([]EventType, error) {
	var out []EventType
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "workspace":
			out = append(out, EventWorkspace)
		case "window":
			out = append(out, EventWindow)
		case "":
		default:
			return nil, fmt.Errorf("unknown event type: %q (expected workspace or window)", part)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no event types in %q", s)
	}
	return out, nil
}

// Event is one notification from the subscription stream. Only its
// arrival matters to the updater; Change and Payload are kept for logs.
type Event struct {
	Type    EventType
	Change  string
	Payload []byte
}
