package cmd

import (
	"fmt"

	"github.com/mj1618/wsicons/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing wsicons tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the layout tree,
the focused workspace and label preview/update as tools.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport

Examples:
  wsicons serve
  wsicons serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	provider, err := newProvider()
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer provider.Close()

	srv := server.New(provider, e.icons, e.logger)
	return srv.Serve(server.Config{Transport: transport, Port: port})
}
