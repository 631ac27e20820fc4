package sway

import (
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// handlerFunc answers one request on conn. It may write any number of
// messages, including events.
type handlerFunc func(conn net.Conn, t messageType, payload []byte)

type fakeServer struct {
	path string
	ln   net.Listener

	mu       sync.Mutex
	requests []string
}

// newFakeServer listens on a short unix socket path; t.TempDir paths can
// exceed the sun_path limit.
func newFakeServer(t *testing.T, handle handlerFunc) *fakeServer {
	t.Helper()
	dir, err := os.MkdirTemp("", "wsi")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "ipc.sock")
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatal(err)
	}
	s := &fakeServer{path: path, ln: ln}
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go s.serve(conn, handle)
		}
	}()
	return s
}

func (s *fakeServer) serve(conn net.Conn, handle handlerFunc) {
	defer conn.Close()
	for {
		t, payload, err := readMessage(conn)
		if err != nil {
			return
		}
		s.mu.Lock()
		s.requests = append(s.requests, string(payload))
		s.mu.Unlock()
		handle(conn, t, payload)
	}
}

func (s *fakeServer) received() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func reply(conn net.Conn, t messageType, body string) {
	writeMessage(conn, t, []byte(body))
}
