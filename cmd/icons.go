package cmd

import (
	"fmt"

	"github.com/mj1618/wsicons/internal/output"
	"github.com/spf13/cobra"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Print the effective icon configuration",
	Long:  "Print the icon table, aliases and rules after merging the config file over the built-in defaults.",
	RunE:  runIcons,
}

func init() {
	rootCmd.AddCommand(iconsCmd)
	iconsCmd.Flags().Bool("path", false, "Only print the config file path")
}

func runIcons(cmd *cobra.Command, args []string) error {
	pathOnly, _ := cmd.Flags().GetBool("path")

	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if pathOnly {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), e.configPath)
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), e.icons, output.OutputFormat, output.PrettyOutput)
}
