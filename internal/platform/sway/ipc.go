package sway

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const magic = "i3-ipc"

// headerLen is magic + uint32 length + uint32 type.
const headerLen = len(magic) + 8

// maxPayload guards against a corrupt length field.
const maxPayload = 64 << 20

type messageType uint32

const (
	msgRunCommand messageType = 0
	msgSubscribe  messageType = 2
	msgGetTree    messageType = 4
	msgGetVersion messageType = 7
)

// Event replies carry the high bit.
const (
	eventMask      messageType = 1 << 31
	eventWorkspace             = eventMask | 0
	eventWindow                = eventMask | 3
	eventShutdown              = eventMask | 6
)

func (t messageType) isEvent() bool {
	return t&eventMask != 0
}

// SocketPath returns the IPC socket from $SWAYSOCK, falling back to $I3SOCK.
func SocketPath() (string, error) {
	if p := os.Getenv("SWAYSOCK"); p != "" {
		return p, nil
	}
	if p := os.Getenv("I3SOCK"); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("neither SWAYSOCK nor I3SOCK is set; is sway running?")
}

func writeMessage(w io.Writer, t messageType, payload []byte) error {
	buf := make([]byte, headerLen+len(payload))
	copy(buf, magic)
	binary.NativeEndian.PutUint32(buf[len(magic):], uint32(len(payload)))
	binary.NativeEndian.PutUint32(buf[len(magic)+4:], uint32(t))
	copy(buf[headerLen:], payload)
	_, err := w.Write(buf)
	return err
}

func readMessage(r io.Reader) (messageType, []byte, error) {
	var header [headerLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, nil, err
	}
	if string(header[:len(magic)]) != magic {
		return 0, nil, fmt.Errorf("bad ipc magic %q", header[:len(magic)])
	}
	n := binary.NativeEndian.Uint32(header[len(magic):])
	t := messageType(binary.NativeEndian.Uint32(header[len(magic)+4:]))
	if n > maxPayload {
		return 0, nil, fmt.Errorf("ipc payload too large: %d bytes", n)
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, err
	}
	return t, payload, nil
}
