package updater

import (
	"testing"

	wserrors "github.com/mj1618/wsicons/internal/errors"
	"github.com/mj1618/wsicons/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_MissingName(t *testing.T) {
	root := newTree(newWorkspace(10, "", intp(1), true, nil, nil))
	_, err := Compute(root, byName)
	assert.True(t, wserrors.Is(err, wserrors.ErrMissingName), "got %v", err)
}

func TestCompute_MissingIndex(t *testing.T) {
	root := newTree(newWorkspace(10, "scratch", nil, true, nil, nil))
	_, err := Compute(root, byName)
	assert.True(t, wserrors.Is(err, wserrors.ErrMissingIndex), "got %v", err)
}

func TestCompute_EmptyWorkspaceKeepsIndex(t *testing.T) {
	root := newTree(newWorkspace(10, "3: T ", intp(3), true, nil, nil))
	plan, err := Compute(root, byName)
	require.NoError(t, err)
	assert.Equal(t, "3", plan.Label)
	assert.NotEqual(t, model.PlaceholderLabel, plan.Label)
	assert.True(t, plan.Rename)
}

func TestCompute_WindowsInTraversalOrder(t *testing.T) {
	split := &model.Node{ID: 20, Type: model.NodeCon, Nodes: []*model.Node{newWindow(21, "terminal"), newWindow(22, "notes")}}
	pip := &model.Node{ID: 23, Type: model.NodeFloatingCon, Name: strp("Firefox")}
	root := newTree(newWorkspace(10, "4", intp(4), true, []*model.Node{split}, []*model.Node{pip}))

	plan, err := Compute(root, byName)
	require.NoError(t, err)
	require.Len(t, plan.Windows, 3)
	assert.Equal(t, []int64{21, 22, 23}, []int64{plan.Windows[0].ID, plan.Windows[1].ID, plan.Windows[2].ID})
	assert.Equal(t, "", plan.Windows[1].Icon, "unmatched window has no icon")
	assert.Equal(t, "4: T 🦊 ", plan.Label)
}

func TestCompute_CarriesWindowAttributes(t *testing.T) {
	w := newWindow(11, "Mozilla Firefox")
	w.AppID = strp("firefox")
	w.WindowProperties = &model.WindowProperties{Class: "Firefox"}
	root := newTree(newWorkspace(10, "1", intp(1), true, []*model.Node{w}, nil))

	plan, err := Compute(root, byName)
	require.NoError(t, err)
	assert.Equal(t, WindowIcon{ID: 11, Name: "Mozilla Firefox", AppID: "firefox", Class: "Firefox"}, plan.Windows[0])
}

func TestRenameCommand(t *testing.T) {
	tests := []struct {
		from, to, want string
	}{
		{"1", "1: a ", `rename workspace "1" to "1: a "`},
		{`say "hi"`, "2", `rename workspace "say \"hi\"" to "2"`},
		{`back\slash`, "3", `rename workspace "back\\slash" to "3"`},
	}
	for _, tt := range tests {
		if got := RenameCommand(tt.from, tt.to); got != tt.want {
			t.Errorf("RenameCommand(%q, %q) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}
