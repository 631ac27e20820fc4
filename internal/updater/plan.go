package updater

import (
	"strings"

	wserrors "github.com/mj1618/wsicons/internal/errors"
	"github.com/mj1618/wsicons/internal/icons"
	"github.com/mj1618/wsicons/internal/model"
)

// WindowIcon is one window of the focused workspace and the icon it got.
type WindowIcon struct {
	ID    int64  `yaml:"id"               json:"id"`
	Name  string `yaml:"name"             json:"name"`
	AppID string `yaml:"app_id,omitempty" json:"app_id,omitempty"`
	Class string `yaml:"class,omitempty"  json:"class,omitempty"`
	Icon  string `yaml:"icon,omitempty"   json:"icon,omitempty"`
}

// Plan is the outcome of one update cycle before anything is sent.
type Plan struct {
	Workspace string       `yaml:"workspace"         json:"workspace"`
	Index     int          `yaml:"index"             json:"index"`
	Windows   []WindowIcon `yaml:"windows"           json:"windows"`
	Label     string       `yaml:"label"             json:"label"`
	Rename    bool         `yaml:"rename"            json:"rename"`
	Command   string       `yaml:"command,omitempty" json:"command,omitempty"`
}

// Compute locates the focused workspace in root, resolves an icon for
// each of its windows and decides whether it needs a rename.
func Compute(root *model.Node, r icons.Resolver) (Plan, error) {
	ws, err := model.FindFocusedWorkspace(root)
	if err != nil {
		return Plan{}, err
	}
	if ws.Name == nil {
		return Plan{}, wserrors.NewMissingName(ws.ID)
	}
	// Rejecting a missing index here means the placeholder label never
	// reaches a rename.
	if ws.Num == nil {
		return Plan{}, wserrors.NewMissingIndex(*ws.Name)
	}

	windows := model.CollectWindows(ws)
	plan := Plan{
		Workspace: *ws.Name,
		Index:     *ws.Num,
		Windows:   make([]WindowIcon, 0, len(windows)),
	}
	iconList := make([]string, 0, len(windows))
	for _, n := range windows {
		w := n.Window()
		icon := r.Icon(w)
		plan.Windows = append(plan.Windows, WindowIcon{
			ID:    w.ID,
			Name:  w.Name,
			AppID: w.AppID,
			Class: w.Class,
			Icon:  icon,
		})
		iconList = append(iconList, icon)
	}

	plan.Label = model.SynthesizeLabel(ws.Num, iconList)
	if plan.Label != plan.Workspace {
		plan.Rename = true
		plan.Command = RenameCommand(plan.Workspace, plan.Label)
	}
	return plan, nil
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// RenameCommand formats the IPC command renaming workspace from to to.
// Workspaces are addressed by their current name.
func RenameCommand(from, to string) string {
	return `rename workspace "` + quoteEscaper.Replace(from) + `" to "` + quoteEscaper.Replace(to) + `"`
}
