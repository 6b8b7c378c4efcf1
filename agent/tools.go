package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/spetersoncode/github-mcp-agent/config"
	"github.com/spetersoncode/github-mcp-agent/tool"
)

// HelpText describes the agent's capabilities to users and models.
const HelpText = `I'm an autonomous agent with the following capabilities:

Mathematical Operations:
- Add two numbers: "add 5 and 3"
- Multiply two numbers: "multiply 4 by 6"

Future Capabilities (coming soon):
- GitHub repository management
- Issue tracking and creation
- Pull request operations

Just ask me to perform any of these operations!`

// AddArgs are the arguments for the add_numbers tool.
type AddArgs struct {
	A int `json:"a" desc:"First number to add" required:"true"`
	B int `json:"b" desc:"Second number to add" required:"true"`
}

// MultiplyArgs are the arguments for the multiply_numbers tool.
type MultiplyArgs struct {
	X int `json:"x" desc:"First number to multiply" required:"true"`
	Y int `json:"y" desc:"Second number to multiply" required:"true"`
}

type emptyArgs struct{}

// BuiltinRegistry returns a registry with the agent's standard tools.
// cfg supplies the details reported by get_system_info; llmConnected
// reports whether a real LLM backend was reachable at startup.
func BuiltinRegistry(cfg *config.Config, llmConnected bool) *tool.Registry {
	return tool.NewRegistry().Add(
		tool.Func("add_numbers", "Add two numbers together",
			func(ctx context.Context, args AddArgs) (string, error) {
				return fmt.Sprintf("Addition Result: %d + %d = %d", args.A, args.B, args.A+args.B), nil
			}),
		tool.Func("multiply_numbers", "Multiply two numbers together",
			func(ctx context.Context, args MultiplyArgs) (string, error) {
				return fmt.Sprintf("Multiplication Result: %d × %d = %d", args.X, args.Y, args.X*args.Y), nil
			}),
		tool.Func("get_agent_help", "Get information about the agent's capabilities",
			func(ctx context.Context, args emptyArgs) (string, error) {
				return "Agent Capabilities:\n" + HelpText, nil
			}),
		tool.Func("get_system_info", "Get information about the MCP server and agent system",
			func(ctx context.Context, args emptyArgs) (string, error) {
				return systemInfo(cfg, llmConnected), nil
			}),
	)
}

func systemInfo(cfg *config.Config, llmConnected bool) string {
	status := "Not Connected"
	if llmConnected {
		status = "Connected"
	}

	var b strings.Builder
	b.WriteString("GitHub MCP Agent System Information:\n\n")
	b.WriteString("Configuration:\n")
	fmt.Fprintf(&b, "- LLM Provider: %s\n", cfg.Provider)
	fmt.Fprintf(&b, "- Ollama Model: %s\n", cfg.OllamaModel)
	fmt.Fprintf(&b, "- Gemini Model: %s\n", cfg.GeminiModel)
	fmt.Fprintf(&b, "- LLM Status: %s\n", status)
	b.WriteString("\nAvailable Tools:\n")
	b.WriteString("- Mathematical operations (add, multiply)\n")
	b.WriteString("- System information and help\n")
	b.WriteString("- Future: GitHub repository management\n")
	b.WriteString("\nMCP Integration:\n")
	b.WriteString("- Server Status: Active\n")
	b.WriteString("- Protocol: Model Context Protocol\n")
	b.WriteString("- Client: Claude Desktop")
	return b.String()
}
