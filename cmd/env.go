package cmd

import (
	"log/slog"

	"github.com/mj1618/wsicons/internal/icons"
	"github.com/mj1618/wsicons/internal/logging"
	"github.com/mj1618/wsicons/internal/platform"
	"github.com/spf13/cobra"
)

// env is the per-invocation state shared by subcommands.
type env struct {
	logger     *slog.Logger
	closeLog   func() error
	configPath string
	icons      *icons.Config
}

// setupEnv builds the logger and loads the icon config from root flags.
func setupEnv(cmd *cobra.Command) (*env, error) {
	flags := rootCmd.PersistentFlags()
	level, _ := flags.GetString("log-level")
	format, _ := flags.GetString("log-format")
	file, _ := flags.GetString("log-file")

	logger, closeLog, err := logging.New(logging.Options{
		Level:  level,
		Format: format,
		File:   file,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	configPath, _ := flags.GetString("config")
	if configPath == "" {
		configPath = icons.DefaultPath()
	}
	cfg, err := icons.Load(configPath)
	if err != nil {
		closeLog()
		return nil, err
	}
	logger.Debug("icon config loaded", "path", configPath, "icons", len(cfg.Icons), "rules", len(cfg.Rules))

	return &env{logger: logger, closeLog: closeLog, configPath: configPath, icons: cfg}, nil
}

func (e *env) Close() error {
	return e.closeLog()
}

// newProvider connects to the socket from --socket or the environment.
func newProvider() (*platform.Provider, error) {
	socket, _ := rootCmd.PersistentFlags().GetString("socket")
	return platform.NewProvider(socket)
}
