// Package updater recomputes the focused workspace label from a fresh
// tree snapshot and renames the workspace when the label changed.
package updater

import (
	"context"
	"log/slog"

	wserrors "github.com/mj1618/wsicons/internal/errors"
	"github.com/mj1618/wsicons/internal/icons"
	"github.com/mj1618/wsicons/internal/platform"
)

// Updater runs one update cycle per call to Update. It holds no state
// between cycles.
type Updater struct {
	Tree      platform.TreeSource
	Commander platform.Commander
	Resolver  icons.Resolver
	Logger    *slog.Logger
	// DryRun computes and logs the rename without sending it.
	DryRun bool
}

func (u *Updater) log() *slog.Logger {
	if u.Logger == nil {
		return slog.Default()
	}
	return u.Logger
}

// Update fetches the tree, computes the plan and sends at most one
// rename. The returned plan is valid whenever the tree could be read
// and a workspace located, even if the rename itself failed.
func (u *Updater) Update(ctx context.Context) (Plan, error) {
	root, err := u.Tree.GetTree(ctx)
	if err != nil {
		if wserrors.CodeOf(err) != wserrors.ErrTreeFetch {
			err = wserrors.NewTreeFetch(err)
		}
		return Plan{}, err
	}

	plan, err := Compute(root, u.Resolver)
	if err != nil {
		return Plan{}, err
	}
	logger := u.log().With("workspace", plan.Workspace, "windows", len(plan.Windows))
	if !plan.Rename {
		logger.Debug("label unchanged", "label", plan.Label)
		return plan, nil
	}
	if u.DryRun {
		logger.Info("dry run: would rename workspace", "label", plan.Label, "command", plan.Command)
		return plan, nil
	}

	logger.Debug("renaming workspace", "command", plan.Command)
	if err := u.Commander.RunCommand(ctx, plan.Command); err != nil {
		return plan, wserrors.NewRenameCommand(plan.Workspace, plan.Label, err)
	}
	logger.Info("renamed workspace", "label", plan.Label)
	return plan, nil
}
