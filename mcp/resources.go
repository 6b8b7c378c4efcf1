package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/spetersoncode/github-mcp-agent/config"
	"github.com/spetersoncode/github-mcp-agent/tool"
)

// Resource URIs exposed by the server.
const (
	ResourceConfigURI       = "agent://config"
	ResourceCapabilitiesURI = "agent://capabilities"
)

// CapabilitiesText is served at agent://capabilities.
const CapabilitiesText = `GitHub MCP Agent Capabilities:

Mathematical Operations:
- Addition of two integers
- Multiplication of two integers

System Operations:
- Configuration information
- Help and documentation
- Status monitoring

Future Capabilities:
- GitHub repository management
- Issue tracking and creation
- Pull request operations
- Code analysis and review

MCP Integration:
- Full Model Context Protocol support
- Claude Desktop integration
- Tool execution and resource access
- Real-time agent communication`

// configResource is the JSON document served at agent://config.
type configResource struct {
	Provider       string   `json:"provider"`
	OllamaModel    string   `json:"ollama_model"`
	GeminiModel    string   `json:"gemini_model"`
	LLMConnected   bool     `json:"llm_connected"`
	ToolsAvailable []string `json:"tools_available"`
}

func registerResources(s *server.MCPServer, registry *tool.Registry, cfg *config.Config, llmConnected bool) {
	configRes := mcp.NewResource(
		ResourceConfigURI,
		"Agent Configuration",
		mcp.WithResourceDescription("Current agent configuration and status"),
		mcp.WithMIMEType("application/json"),
	)
	s.AddResource(configRes, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := ConfigResourceJSON(registry, cfg, llmConnected)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      ResourceConfigURI,
				MIMEType: "application/json",
				Text:     text,
			},
		}, nil
	})

	capabilitiesRes := mcp.NewResource(
		ResourceCapabilitiesURI,
		"Agent Capabilities",
		mcp.WithResourceDescription("Detailed information about agent capabilities"),
		mcp.WithMIMEType("text/plain"),
	)
	s.AddResource(capabilitiesRes, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      ResourceCapabilitiesURI,
				MIMEType: "text/plain",
				Text:     CapabilitiesText,
			},
		}, nil
	})
}

// ConfigResourceJSON renders the agent://config resource body.
func ConfigResourceJSON(registry *tool.Registry, cfg *config.Config, llmConnected bool) (string, error) {
	doc := configResource{
		Provider:       cfg.Provider,
		OllamaModel:    cfg.OllamaModel,
		GeminiModel:    cfg.GeminiModel,
		LLMConnected:   llmConnected,
		ToolsAvailable: registry.Names(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("mcp: marshal config resource: %w", err)
	}
	return string(data), nil
}
