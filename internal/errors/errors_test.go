package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestIs_MatchesCode(t *testing.T) {
	err := NewWorkspaceNotFound()
	if !Is(err, ErrWorkspaceNotFound) {
		t.Error("expected WORKSPACE_NOT_FOUND")
	}
	if Is(err, ErrMissingName) {
		t.Error("did not expect MISSING_NAME")
	}
}

func TestIs_WalksWrappedErrors(t *testing.T) {
	err := fmt.Errorf("cycle failed: %w", NewMissingIndex("web"))
	if !Is(err, ErrMissingIndex) {
		t.Error("expected wrapped MISSING_INDEX to match")
	}
	if got := CodeOf(err); got != ErrMissingIndex {
		t.Errorf("CodeOf: got %q, want %q", got, ErrMissingIndex)
	}
}

func TestIs_PlainError(t *testing.T) {
	if Is(stderrors.New("boom"), ErrConnection) {
		t.Error("plain error should not match")
	}
	if CodeOf(nil) != "" {
		t.Error("CodeOf(nil) should be empty")
	}
}

func TestWsError_Unwrap(t *testing.T) {
	cause := stderrors.New("broken pipe")
	err := NewRenameCommand("1", "1: x ", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected cause to be reachable via errors.Is")
	}
	want := `RENAME_COMMAND: rename "1" to "1: x " failed: broken pipe`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestMessages_DistinguishWorkspaceFailures(t *testing.T) {
	tests := []struct {
		err  *WsError
		want string
	}{
		{NewWorkspaceNotFound(), "WORKSPACE_NOT_FOUND: no focused workspace"},
		{NewMissingName(42), "MISSING_NAME: focused workspace missing name (id 42)"},
		{NewMissingIndex("mail"), `MISSING_INDEX: missing index for workspace "mail"`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
