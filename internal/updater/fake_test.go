package updater

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/mj1618/wsicons/internal/icons"
	"github.com/mj1618/wsicons/internal/model"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

// fakeCompositor serves a fixed tree and applies rename commands to it.
type fakeCompositor struct {
	root      *model.Node
	treeErr   error
	renameErr error
	commands  []string
}

func (f *fakeCompositor) GetTree(context.Context) (*model.Node, error) {
	if f.treeErr != nil {
		return nil, f.treeErr
	}
	return f.root, nil
}

var renameRe = regexp.MustCompile(`^rename workspace "(.*)" to "(.*)"$`)

func (f *fakeCompositor) RunCommand(_ context.Context, command string) error {
	f.commands = append(f.commands, command)
	if f.renameErr != nil {
		return f.renameErr
	}
	m := renameRe.FindStringSubmatch(command)
	if m == nil {
		return fmt.Errorf("unexpected command %q", command)
	}
	if !renameNode(f.root, m[1], m[2]) {
		return fmt.Errorf("no workspace named %q", m[1])
	}
	return nil
}

func renameNode(n *model.Node, from, to string) bool {
	if n.Type == model.NodeWorkspace && n.Name != nil && *n.Name == from {
		n.Name = strp(to)
		return true
	}
	for _, c := range n.Nodes {
		if renameNode(c, from, to) {
			return true
		}
	}
	return false
}

func newTree(workspaces ...*model.Node) *model.Node {
	return &model.Node{ID: 1, Type: model.NodeRoot, Name: strp("root"), Nodes: []*model.Node{
		{ID: 2, Type: model.NodeOutput, Name: strp("DP-1"), Nodes: workspaces},
	}}
}

func newWorkspace(id int64, name string, num *int, focused bool, nodes, floating []*model.Node) *model.Node {
	ws := &model.Node{ID: id, Type: model.NodeWorkspace, Num: num, Focused: focused, Nodes: nodes, FloatingNodes: floating}
	if name != "" {
		ws.Name = strp(name)
	}
	return ws
}

func newWindow(id int64, name string) *model.Node {
	return &model.Node{ID: id, Type: model.NodeCon, Name: strp(name)}
}

// byName resolves icons from the window title, as a stand-in for config.
var byName = icons.ResolverFunc(func(w model.Window) string {
	switch strings.ToLower(w.Name) {
	case "firefox":
		return "🦊"
	case "terminal":
		return "T"
	}
	return ""
})

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUpdater(f *fakeCompositor) *Updater {
	return &Updater{Tree: f, Commander: f, Resolver: byName, Logger: discardLogger()}
}
