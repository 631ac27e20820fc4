package cmd

import (
	"time"

	"github.com/mj1618/wsicons/internal/model"
	"github.com/mj1618/wsicons/internal/output"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the compositor layout tree",
	Long:  "Print the get_tree snapshot as nested nodes, or as a flat list with path breadcrumbs (--flat).",
	RunE:  runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().Bool("flat", false, "Flatten the tree into a list with path breadcrumbs")
	treeCmd.Flags().Bool("windows", false, "Only list nodes that count as windows (implies --flat)")
	treeCmd.Flags().Bool("focused", false, "Limit output to the focused workspace")
}

func runTree(cmd *cobra.Command, args []string) error {
	flat, _ := cmd.Flags().GetBool("flat")
	windowsOnly, _ := cmd.Flags().GetBool("windows")
	focused, _ := cmd.Flags().GetBool("focused")

	provider, err := newProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	root, err := provider.Tree.GetTree(cmd.Context())
	if err != nil {
		return err
	}
	if focused {
		if root, err = model.FindFocusedWorkspace(root); err != nil {
			return err
		}
	}

	result := output.TreeResult{Socket: provider.Socket, TS: time.Now().Unix()}
	switch {
	case windowsOnly:
		result.Nodes = model.FlattenWindows(root)
	case flat:
		result.Nodes = model.FlattenTree(root)
	default:
		result.Tree = root
	}
	return output.Print(result)
}
