// Package mcpagent provides the core types for the github-mcp-agent:
// an LLM-backed tool-calling agent exposed to MCP clients such as
// Claude Desktop.
//
// The package defines the provider-neutral conversation model
// ([Message], [Response], [StreamEvent]), the tool-calling model
// ([Tool], [ToolCall], [ToolResult]) and the [ChatProvider] interface
// that every LLM backend implements. Concrete backends live under
// provider/ (ollama, gemini via google, anthropic, openai, and a
// deterministic mock used for demo mode).
//
// # Basic Usage
//
// Load configuration and construct a provider:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, err := provider.New(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := p.Chat(ctx, []mcpagent.Message{
//	    {Role: mcpagent.RoleUser, Content: "Add 15 and 27"},
//	})
//
// # Higher-Level Surfaces
//
//   - [github.com/spetersoncode/github-mcp-agent/agent]: the autonomous
//     tool-calling loop with conversation memory
//   - [github.com/spetersoncode/github-mcp-agent/mcp]: the MCP stdio
//     server exposing the agent's tools and resources
//   - [github.com/spetersoncode/github-mcp-agent/tool]: the tool registry
//     with reflected JSON schemas
package mcpagent
