package sway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	wserrors "github.com/mj1618/wsicons/internal/errors"
	"github.com/mj1618/wsicons/internal/platform"
)

// Subscriber opens a dedicated connection per subscription.
type Subscriber struct {
	Socket string
}

// Subscribe connects and subscribes to events. The returned stream owns
// its connection.
func (s *Subscriber) Subscribe(ctx context.Context, events ...platform.EventType) (platform.EventStream, error) {
	c, err := Dial(ctx, s.Socket)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(events))
	for i, e := range events {
		names[i] = string(e)
	}
	payload, err := json.Marshal(names)
	if err != nil {
		c.Close()
		return nil, err
	}
	reply, err := c.roundTrip(ctx, msgSubscribe, payload)
	if err != nil {
		c.Close()
		return nil, err
	}
	var ack struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(reply, &ack); err != nil {
		c.Close()
		return nil, fmt.Errorf("decode subscribe reply: %w", err)
	}
	if !ack.Success {
		c.Close()
		return nil, fmt.Errorf("subscribe to %v rejected", names)
	}
	return &stream{conn: c}, nil
}

type stream struct {
	conn *Conn
}

// Next reads the next event. Replies that are not events are skipped.
func (s *stream) Next(ctx context.Context) (platform.Event, error) {
	c := s.conn.conn
	c.SetReadDeadline(time.Time{})
	stop := context.AfterFunc(ctx, func() {
		c.SetReadDeadline(time.Now())
	})
	defer stop()

	for {
		t, payload, err := readMessage(c)
		if err != nil {
			if ctx.Err() != nil {
				return platform.Event{}, ctx.Err()
			}
			return platform.Event{}, wserrors.NewSubscription(err)
		}
		if !t.isEvent() {
			continue
		}
		if t == eventShutdown {
			return platform.Event{}, wserrors.NewSubscription(fmt.Errorf("compositor is shutting down"))
		}
		return decodeEvent(t, payload), nil
	}
}

func (s *stream) Close() error {
	return s.conn.Close()
}

func decodeEvent(t messageType, payload []byte) platform.Event {
	ev := platform.Event{Payload: payload}
	switch t {
	case eventWorkspace:
		ev.Type = platform.EventWorkspace
	case eventWindow:
		ev.Type = platform.EventWindow
	default:
		ev.Type = platform.EventType(fmt.Sprintf("0x%x", uint32(t)))
	}
	var body struct {
		Change string `json:"change"`
	}
	if json.Unmarshal(payload, &body) == nil {
		ev.Change = body.Change
	}
	return ev
}
