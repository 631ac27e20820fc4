package cmd

import (
	"github.com/mj1618/wsicons/internal/output"
	"github.com/mj1618/wsicons/internal/updater"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Relabel the focused workspace once and exit",
	Long:  "Fetch the tree, compute the focused workspace's label and rename it if the label changed. Prints the resulting plan.",
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().Bool("dry-run", false, "Compute the rename but do not send it")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	provider, err := newProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	u := &updater.Updater{
		Tree:      provider.Tree,
		Commander: provider.Commander,
		Resolver:  e.icons,
		Logger:    e.logger,
		DryRun:    dryRun,
	}
	plan, err := u.Update(cmd.Context())
	if err != nil {
		return err
	}
	return output.Print(plan)
}
