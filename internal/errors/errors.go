package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies a failure in one update cycle or in the IPC layer.
type ErrorCode string

const (
	ErrConnection        ErrorCode = "CONNECTION"          // socket unreachable or broken
	ErrTreeFetch         ErrorCode = "TREE_FETCH"          // get_tree failed or returned garbage
	ErrWorkspaceNotFound ErrorCode = "WORKSPACE_NOT_FOUND" // no focused workspace in the snapshot
	ErrMissingName       ErrorCode = "MISSING_NAME"        // focused workspace has no name
	ErrMissingIndex      ErrorCode = "MISSING_INDEX"       // focused workspace has no num
	ErrRenameCommand     ErrorCode = "RENAME_COMMAND"      // compositor rejected the rename
	ErrSubscription      ErrorCode = "SUBSCRIPTION"        // event stream ended or broke; fatal
	ErrConfig            ErrorCode = "CONFIG"              // icon config could not be loaded
)

// WsError is a structured error carrying a code and optional context.
type WsError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Err     error
}

// Error implements the error interface.
func (e *WsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *WsError) Unwrap() error {
	return e.Err
}

// NewConnection wraps a transport-level failure against the given socket.
func NewConnection(socket string, err error) *WsError {
	return &WsError{
		Code:    ErrConnection,
		Message: "ipc connection failed",
		Details: map[string]any{"socket": socket},
		Err:     err,
	}
}

// NewTreeFetch wraps a failed get_tree request.
func NewTreeFetch(err error) *WsError {
	return &WsError{
		Code:    ErrTreeFetch,
		Message: "could not fetch window tree",
		Err:     err,
	}
}

// NewWorkspaceNotFound reports a snapshot with no focused workspace.
func NewWorkspaceNotFound() *WsError {
	return &WsError{
		Code:    ErrWorkspaceNotFound,
		Message: "no focused workspace",
	}
}

// NewMissingName reports a focused workspace without a name.
func NewMissingName(id int64) *WsError {
	return &WsError{
		Code:    ErrMissingName,
		Message: fmt.Sprintf("focused workspace missing name (id %d)", id),
		Details: map[string]any{"id": id},
	}
}

// NewMissingIndex reports a focused workspace without a number.
func NewMissingIndex(name string) *WsError {
	return &WsError{
		Code:    ErrMissingIndex,
		Message: fmt.Sprintf("missing index for workspace %q", name),
		Details: map[string]any{"workspace": name},
	}
}

// NewRenameCommand wraps a rejected or failed rename command.
func NewRenameCommand(from, to string, err error) *WsError {
	return &WsError{
		Code:    ErrRenameCommand,
		Message: fmt.Sprintf("rename %q to %q failed", from, to),
		Details: map[string]any{"from": from, "to": to},
		Err:     err,
	}
}

// NewSubscription wraps a broken or closed event stream.
func NewSubscription(err error) *WsError {
	return &WsError{
		Code:    ErrSubscription,
		Message: "event subscription ended",
		Err:     err,
	}
}

// NewConfig wraps an icon configuration problem.
func NewConfig(path string, err error) *WsError {
	return &WsError{
		Code:    ErrConfig,
		Message: fmt.Sprintf("invalid icon config %s", path),
		Details: map[string]any{"path": path},
		Err:     err,
	}
}

// Is reports whether err, or anything it wraps, is a WsError with the given code.
func Is(err error, code ErrorCode) bool {
	var wsErr *WsError
	if stderrors.As(err, &wsErr) {
		return wsErr.Code == code
	}
	return false
}

// CodeOf returns the code of the first WsError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var wsErr *WsError
	if stderrors.As(err, &wsErr) {
		return wsErr.Code
	}
	return ""
}
