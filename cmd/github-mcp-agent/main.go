// Command github-mcp-agent is the agent's CLI: it serves the MCP
// stdio server for Claude Desktop, runs interactive chat sessions,
// connects the checkout to its GitHub remote, and installs itself
// into the Claude Desktop configuration.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "github-mcp-agent",
	Short:   "GitHub MCP agent with LLM-backed tool calling",
	Long:    "github-mcp-agent runs an MCP server and an autonomous tool-calling agent\nbacked by Ollama, Gemini, Anthropic, or OpenAI, with a deterministic mock\nfallback when no backend is reachable.",
	Version: version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
