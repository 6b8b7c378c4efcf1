// Package mcp exposes the agent's tool registry over the Model
// Context Protocol so clients like Claude Desktop can discover and
// call the tools, and read the agent's status resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	ai "github.com/spetersoncode/github-mcp-agent"
	"github.com/spetersoncode/github-mcp-agent/config"
	"github.com/spetersoncode/github-mcp-agent/tool"
)

// Defaults reported to MCP clients during initialization.
const (
	DefaultServerName    = "github-mcp-agent"
	DefaultServerVersion = "1.0.0"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// NewServer creates an MCP server exposing every tool in the registry
// plus the agent://config and agent://capabilities resources.
func NewServer(registry *tool.Registry, cfg *config.Config, llmConnected bool, opts ...ServerOption) *server.MCPServer {
	sc := &serverConfig{
		name:    DefaultServerName,
		version: DefaultServerVersion,
	}
	for _, opt := range opts {
		opt(sc)
	}

	s := server.NewMCPServer(
		sc.name,
		sc.version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	)

	for _, t := range registry.Tools() {
		toolName := t.Name
		handler, ok := registry.Get(toolName)
		if !ok || handler == nil {
			continue
		}
		s.AddTool(ToMCPTool(t), createMCPHandler(toolName, handler))
	}

	registerResources(s, registry, cfg, llmConnected)

	return s
}

// createMCPHandler wraps a tool.Handler as an MCP tool handler.
func createMCPHandler(toolName string, handler tool.Handler) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var argsJSON string
		if req.Params.Arguments != nil {
			data, err := json.Marshal(req.Params.Arguments)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to marshal arguments: %v", err)), nil
			}
			argsJSON = string(data)
		} else {
			argsJSON = "{}"
		}

		call := ai.ToolCall{
			Name:      toolName,
			Arguments: argsJSON,
		}

		result, err := handler(ctx, call)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error executing tool '%s': %v", toolName, err)), nil
		}

		return mcp.NewToolResultText(result), nil
	}
}

// ServeStdio runs the MCP server over stdin/stdout, the transport
// Claude Desktop uses for subprocess servers. Startup notices go to
// stderr so stdout carries only protocol frames.
func ServeStdio(registry *tool.Registry, cfg *config.Config, llmConnected bool, opts ...ServerOption) error {
	fmt.Fprintln(os.Stderr, "Starting GitHub MCP Agent Server for Claude Desktop...")
	fmt.Fprintf(os.Stderr, "LLM Provider: %s\n", cfg.Provider)
	fmt.Fprintln(os.Stderr, "Server ready for Claude Desktop connection")

	s := NewServer(registry, cfg, llmConnected, opts...)
	return server.ServeStdio(s)
}
