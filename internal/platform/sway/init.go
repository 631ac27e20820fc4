package sway

import (
	"context"

	"github.com/mj1618/wsicons/internal/platform"
)

func init() {
	platform.NewProviderFunc = NewProvider
}

// NewProvider connects the request/reply channel to socket, or to
// SocketPath() when socket is empty. The event channel is opened lazily
// by Subscribe.
func NewProvider(socket string) (*platform.Provider, error) {
	if socket == "" {
		var err error
		if socket, err = SocketPath(); err != nil {
			return nil, err
		}
	}
	conn, err := Dial(context.Background(), socket)
	if err != nil {
		return nil, err
	}
	p := &platform.Provider{
		Tree:       conn,
		Commander:  conn,
		Subscriber: &Subscriber{Socket: socket},
		Versioner:  conn,
		Socket:     socket,
	}
	p.AddCloser(conn.Close)
	return p, nil
}
