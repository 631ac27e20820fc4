package cmd

import (
	"github.com/mj1618/wsicons/internal/output"
	"github.com/mj1618/wsicons/internal/updater"
	"github.com/spf13/cobra"
)

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Show the label the focused workspace would get",
	Long:  "Compute the focused workspace's label, the icon chosen for each window and the rename command, without sending anything.",
	RunE:  runLabel,
}

func init() {
	rootCmd.AddCommand(labelCmd)
}

func runLabel(cmd *cobra.Command, args []string) error {
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

	root, err := provider.Tree.GetTree(cmd.Context())
	if err != nil {
		return err
	}
	plan, err := updater.Compute(root, e.icons)
	if err != nil {
		return err
	}
	return output.Print(plan)
}
