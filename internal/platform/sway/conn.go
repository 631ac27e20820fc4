package sway

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	wserrors "github.com/mj1618/wsicons/internal/errors"
	"github.com/mj1618/wsicons/internal/model"
)

// Conn is a request/reply connection. Calls are serialized.
//
// A call that fails mid-exchange leaves its reply unread on the socket, so
// the connection is marked broken and redialed before the next call.
type Conn struct {
	mu     sync.Mutex
	conn   net.Conn
	socket string
	broken bool
	closed bool
}

// Dial connects to the IPC socket at path.
func Dial(ctx context.Context, path string) (*Conn, error) {
	nc, err := dialSocket(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Conn{conn: nc, socket: path}, nil
}

func dialSocket(ctx context.Context, path string) (net.Conn, error) {
	var d net.Dialer
	nc, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, wserrors.NewConnection(path, err)
	}
	return nc, nil
}

// Close closes the underlying socket.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return c.conn.Close()
}

func (c *Conn) redial(ctx context.Context) error {
	if c.closed {
		return wserrors.NewConnection(c.socket, net.ErrClosed)
	}
	c.conn.Close()
	nc, err := dialSocket(ctx, c.socket)
	if err != nil {
		return err
	}
	c.conn = nc
	c.broken = false
	return nil
}

// roundTrip sends one request and waits for the matching reply.
func (c *Conn) roundTrip(ctx context.Context, t messageType, payload []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.broken {
		if err := c.redial(ctx); err != nil {
			return nil, err
		}
	}

	nc := c.conn
	nc.SetDeadline(time.Time{})
	stop := context.AfterFunc(ctx, func() {
		nc.SetDeadline(time.Now())
	})
	defer stop()

	if err := writeMessage(nc, t, payload); err != nil {
		c.broken = true
		return nil, c.transportErr(ctx, err)
	}
	for {
		rt, reply, err := readMessage(nc)
		if err != nil {
			c.broken = true
			return nil, c.transportErr(ctx, err)
		}
		// Stray events are not expected on a request connection; skip them.
		if rt.isEvent() {
			continue
		}
		if rt != t {
			c.broken = true
			return nil, fmt.Errorf("ipc reply type %d does not match request type %d", rt, t)
		}
		return reply, nil
	}
}

func (c *Conn) transportErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return wserrors.NewConnection(c.socket, err)
}

// GetTree fetches the full layout tree.
func (c *Conn) GetTree(ctx context.Context) (*model.Node, error) {
	reply, err := c.roundTrip(ctx, msgGetTree, nil)
	if err != nil {
		return nil, wserrors.NewTreeFetch(err)
	}
	var root model.Node
	if err := json.Unmarshal(reply, &root); err != nil {
		return nil, wserrors.NewTreeFetch(fmt.Errorf("decode tree: %w", err))
	}
	return &root, nil
}

type commandResult struct {
	Success    bool   `json:"success"`
	ParseError bool   `json:"parse_error,omitempty"`
	Error      string `json:"error,omitempty"`
}

// RunCommand runs command and fails if any of its sub-commands failed.
func (c *Conn) RunCommand(ctx context.Context, command string) error {
	reply, err := c.roundTrip(ctx, msgRunCommand, []byte(command))
	if err != nil {
		return err
	}
	var results []commandResult
	if err := json.Unmarshal(reply, &results); err != nil {
		return fmt.Errorf("decode command reply: %w", err)
	}
	var failures []string
	for _, r := range results {
		if !r.Success {
			msg := r.Error
			if msg == "" {
				msg = "unknown error"
			}
			failures = append(failures, msg)
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("command %q rejected: %s", command, strings.Join(failures, "; "))
	}
	return nil
}

type versionReply struct {
	Major         int    `json:"major"`
	Minor         int    `json:"minor"`
	Patch         int    `json:"patch"`
	HumanReadable string `json:"human_readable"`
}

// CompositorVersion reports the compositor's human readable version.
func (c *Conn) CompositorVersion(ctx context.Context) (string, error) {
	reply, err := c.roundTrip(ctx, msgGetVersion, nil)
	if err != nil {
		return "", err
	}
	var v versionReply
	if err := json.Unmarshal(reply, &v); err != nil {
		return "", fmt.Errorf("decode version: %w", err)
	}
	if v.HumanReadable != "" {
		return v.HumanReadable, nil
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch), nil
}
