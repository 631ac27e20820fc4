package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the IPC backends for one compositor socket.
// Tree and Commander share the request/reply connection; Subscriber
// opens its own.
type Provider struct {
	Tree       TreeSource
	Commander  Commander
	Subscriber Subscriber
	Versioner  Versioner
	// Socket is the resolved IPC socket path.
	Socket     string

	closers []func() error
}

// AddCloser registers a function run by Close.
func (p *Provider) AddCloser(fn func() error) {
	p.closers = append(p.closers, fn)
}

// Close releases every connection held by the provider.
func (p *Provider) Close() error {
	var first error
	for _, fn := range p.closers {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	p.closers = nil
	return first
}

// ErrUnsupported is returned when no backend has been registered.
var ErrUnsupported = fmt.Errorf("wsicons: no compositor backend registered for %s/%s", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by backend packages via init().
// See internal/platform/sway/init.go for the sway/i3 registration.
var NewProviderFunc func(socket string) (*Provider, error)

// NewProvider returns a Provider connected to socket. An empty socket
// lets the backend pick its default.
func NewProvider(socket string) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc(socket)
}
