// Package server exposes wsicons operations as MCP tools.
package server

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/wsicons/internal/icons"
	"github.com/mj1618/wsicons/internal/platform"
	"github.com/mj1618/wsicons/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server with the IPC provider and icon resolver.
type Server struct {
	provider   *platform.Provider
	resolver   icons.Resolver
	logger     *slog.Logger
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// New creates an MCP server with all wsicons tools registered.
func New(provider *platform.Provider, resolver icons.Resolver, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		provider: provider,
		resolver: resolver,
		logger:   logger,
	}
	s.mcp = mcpserver.NewMCPServer("wsicons", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("tree",
			mcp.WithDescription("Read the compositor layout tree. Returns the nested tree, or a flat list with path breadcrumbs."),
			mcp.WithBoolean("flat", mcp.Description("Return a flat node list instead of the nested tree")),
			mcp.WithBoolean("windows", mcp.Description("Only return nodes that count as windows (implies flat)")),
		),
		s.handleTree,
	)

	s.mcp.AddTool(
		mcp.NewTool("focused_workspace",
			mcp.WithDescription("Return the focused workspace and the windows it contains"),
		),
		s.handleFocusedWorkspace,
	)

	s.mcp.AddTool(
		mcp.NewTool("preview_label",
			mcp.WithDescription("Compute the icon label for the focused workspace without renaming it"),
		),
		s.handlePreviewLabel,
	)

	s.mcp.AddTool(
		mcp.NewTool("update_label",
			mcp.WithDescription("Rename the focused workspace to its icon label if it differs from the current name"),
			mcp.WithBoolean("dry_run", mcp.Description("Compute the rename but do not send it")),
		),
		s.handleUpdateLabel,
	)
}
