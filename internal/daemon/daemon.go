// Package daemon drives the updater from compositor events.
//
// Events are processed strictly one at a time: an update cycle runs to
// completion before the next event is taken from the stream. Failed
// cycles are logged and dropped; only a broken subscription ends Run.
package daemon

import (
	"context"
	"crypto/rand"
	stderrors "errors"
	"io"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	wserrors "github.com/mj1618/wsicons/internal/errors"
	"github.com/mj1618/wsicons/internal/icons"
	"github.com/mj1618/wsicons/internal/platform"
	"github.com/mj1618/wsicons/internal/updater"
)

// DefaultEvents are the categories that can change a workspace's windows.
var DefaultEvents = []platform.EventType{platform.EventWorkspace, platform.EventWindow}

// Options configures Run.
type Options struct {
	Provider *platform.Provider
	Resolver icons.Resolver
	Events   []platform.EventType
	DryRun   bool
	Logger   *slog.Logger

	// ConfigPath is reloaded on change when WatchConfig is set.
	ConfigPath  string
	WatchConfig bool
}

type daemon struct {
	updater *updater.Updater
	logger  *slog.Logger
	entropy io.Reader
}

type next struct {
	event platform.Event
	err   error
}

// Run subscribes to events and relabels the focused workspace once at
// startup and once per event. It returns nil when ctx is cancelled and
// a SUBSCRIPTION error when the event stream breaks.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	events := opts.Events
	if len(events) == 0 {
		events = DefaultEvents
	}
	p := opts.Provider

	if p.Versioner != nil {
		if v, err := p.Versioner.CompositorVersion(ctx); err == nil {
			logger.Info("connected", "socket", p.Socket, "version", v)
		}
	}

	stream, err := p.Subscriber.Subscribe(ctx, events...)
	if err != nil {
		return err
	}
	defer stream.Close()
	logger.Info("subscribed", "events", events, "dry_run", opts.DryRun)

	d := &daemon{
		updater: &updater.Updater{
			Tree:      p.Tree,
			Commander: p.Commander,
			Resolver:  opts.Resolver,
			Logger:    logger,
			DryRun:    opts.DryRun,
		},
		logger:  logger,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}

	var reloads <-chan *icons.Config
	var reloadErrs <-chan error
	if opts.WatchConfig && opts.ConfigPath != "" {
		reloads, reloadErrs, err = icons.Watch(ctx, opts.ConfigPath)
		if err != nil {
			logger.Warn("config reload disabled", "path", opts.ConfigPath, "err", err)
		} else {
			logger.Info("watching icon config", "path", opts.ConfigPath)
		}
	}

	pumpCtx, stopPump := context.WithCancel(ctx)
	defer stopPump()
	incoming := make(chan next)
	go pump(pumpCtx, stream, incoming)

	d.cycle(ctx, "startup", "")

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping", "reason", ctx.Err())
			return nil
		case n := <-incoming:
			if n.err != nil {
				if ctx.Err() != nil {
					return nil
				}
				if !wserrors.Is(n.err, wserrors.ErrSubscription) {
					n.err = wserrors.NewSubscription(n.err)
				}
				return n.err
			}
			d.cycle(ctx, string(n.event.Type), n.event.Change)
		case cfg, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			d.updater.Resolver = cfg
			logger.Info("icon config reloaded", "path", opts.ConfigPath)
			d.cycle(ctx, "config", "reload")
		case err, ok := <-reloadErrs:
			if !ok {
				reloadErrs = nil
				continue
			}
			logger.Error("icon config reload failed; keeping previous config", "path", opts.ConfigPath, "err", err)
		}
	}
}

// pump forwards events from stream until it fails. The send blocks
// until Run has finished the previous cycle.
func pump(ctx context.Context, stream platform.EventStream, out chan<- next) {
	for {
		ev, err := stream.Next(ctx)
		select {
		case out <- next{event: ev, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

// cycle runs one update and logs its outcome. Errors never escape.
func (d *daemon) cycle(ctx context.Context, trigger, change string) {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), d.entropy)
	logger := d.logger.With("cycle", id.String(), "trigger", trigger)
	if change != "" {
		logger = logger.With("change", change)
	}
	u := *d.updater
	u.Logger = logger

	if _, err := u.Update(ctx); err != nil {
		attrs := []any{"code", wserrors.CodeOf(err), "err", err}
		var wsErr *wserrors.WsError
		if stderrors.As(err, &wsErr) {
			for k, v := range wsErr.Details {
				attrs = append(attrs, k, v)
			}
		}
		logger.Error("could not update workspace name", attrs...)
	}
}
