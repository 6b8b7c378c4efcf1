package main

import (
	"github.com/spf13/cobra"

	"github.com/spetersoncode/github-mcp-agent/agent"
	"github.com/spetersoncode/github-mcp-agent/config"
	"github.com/spetersoncode/github-mcp-agent/mcp"
	"github.com/spetersoncode/github-mcp-agent/provider"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP stdio server for Claude Desktop",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The server works without a reachable LLM; tools run locally
	llmConnected := true
	if _, err := provider.New(cmd.Context(), cfg); err != nil {
		llmConnected = false
	}

	registry := agent.BuiltinRegistry(cfg, llmConnected)
	return mcp.ServeStdio(registry, cfg, llmConnected)
}
