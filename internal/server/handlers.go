package server

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/wsicons/internal/model"
	"github.com/mj1618/wsicons/internal/output"
	"github.com/mj1618/wsicons/internal/updater"
)

// toText serializes v to YAML for an MCP response.
func toText(v interface{}) *mcp.CallToolResult {
	b, err := output.Marshal(v, output.FormatYAML, false)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

func (s *Server) handleTree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	flat := boolParam(params, "flat", false)
	windowsOnly := boolParam(params, "windows", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	root, err := s.provider.Tree.GetTree(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := output.TreeResult{Socket: s.provider.Socket, TS: time.Now().Unix()}
	switch {
	case windowsOnly:
		result.Nodes = model.FlattenWindows(root)
	case flat:
		result.Nodes = model.FlattenTree(root)
	default:
		result.Tree = root
	}
	return toText(result), nil
}

type focusedResult struct {
	ID      int64            `yaml:"id"`
	Name    string           `yaml:"name"`
	Num     *int             `yaml:"num,omitempty"`
	Windows []model.FlatNode `yaml:"windows"`
}

func (s *Server) handleFocusedWorkspace(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	root, err := s.provider.Tree.GetTree(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ws, err := model.FindFocusedWorkspace(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result := focusedResult{ID: ws.ID, Name: ws.NameOr(""), Num: ws.Num, Windows: model.FlattenWindows(ws)}
	return toText(result), nil
}

func (s *Server) handlePreviewLabel(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	root, err := s.provider.Tree.GetTree(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	plan, err := updater.Compute(root, s.resolver)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toText(plan), nil
}

func (s *Server) handleUpdateLabel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dryRun := boolParam(request.GetArguments(), "dry_run", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	u := &updater.Updater{
		Tree:      s.provider.Tree,
		Commander: s.provider.Commander,
		Resolver:  s.resolver,
		Logger:    s.logger,
		DryRun:    dryRun,
	}
	plan, err := u.Update(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toText(plan), nil
}
