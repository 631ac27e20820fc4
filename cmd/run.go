package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mj1618/wsicons/internal/daemon"
	"github.com/mj1618/wsicons/internal/platform"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch compositor events and keep workspace labels current",
	Long: `Subscribe to workspace and window events and relabel the focused workspace
after each one. This is also what wsicons does when run without a subcommand.

Failed updates are logged and skipped; the daemon exits only if the event
subscription breaks or it receives SIGINT/SIGTERM.`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addDaemonFlags(runCmd)
}

func addDaemonFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Log renames instead of sending them")
	cmd.Flags().Bool("watch-config", false, "Reload the icon config when the file changes")
	cmd.Flags().String("events", "workspace,window", "Comma-separated event types that trigger an update")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	watch, _ := cmd.Flags().GetBool("watch-config")
	eventsStr, _ := cmd.Flags().GetString("events")

	events, err := platform.ParseEventTypes(eventsStr)
	if err != nil {
		return err
	}

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return daemon.Run(ctx, daemon.Options{
		Provider:    provider,
		Resolver:    e.icons,
		Events:      events,
		DryRun:      dryRun,
		Logger:      e.logger,
		ConfigPath:  e.configPath,
		WatchConfig: watch,
	})
}
