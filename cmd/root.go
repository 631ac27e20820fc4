package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/wsicons/internal/output"
	_ "github.com/mj1618/wsicons/internal/platform/sway"
	"github.com/mj1618/wsicons/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wsicons",
	Short: "Label sway workspaces with icons of their open windows",
	Long: `wsicons renames the focused sway (or i3) workspace to "<num>: <icons> ",
one icon per window, whenever windows or workspaces change.

Run without a subcommand to start the daemon.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("socket", "", "IPC socket path (default: $SWAYSOCK, then $I3SOCK)")
	rootCmd.PersistentFlags().String("config", "", "Icon config file, .toml or .yaml (default: $XDG_CONFIG_HOME/wsicons/config.toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text, json")
	rootCmd.PersistentFlags().String("log-file", "", "Append logs to this file instead of stderr")
	rootCmd.RunE = runDaemon
	addDaemonFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}
