// Package claude installs the agent's MCP server into the Claude
// Desktop configuration file, preserving any other servers already
// registered there.
package claude

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// ServerName is the key used in the mcpServers section.
const ServerName = "github-mcp-agent"

// ServerEntry describes how Claude Desktop starts the MCP server.
type ServerEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

// ConfigPath returns the Claude Desktop config location for the
// current OS.
func ConfigPath() (string, error) {
	return configPathFor(runtime.GOOS)
}

func configPathFor(goos string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("claude: home directory: %w", err)
	}

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json"), nil
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Claude", "claude_desktop_config.json"), nil
	default:
		return filepath.Join(home, ".config", "claude", "claude_desktop_config.json"), nil
	}
}

// Backup copies the config file to <path>.backup if it exists.
// Returns the backup path, or "" when there was nothing to back up.
func Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("claude: read config: %w", err)
	}

	backupPath := path + ".backup"
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", fmt.Errorf("claude: write backup: %w", err)
	}
	return backupPath, nil
}

// warnOutput receives the invalid-config warning. Replaced in tests.
var warnOutput io.Writer = os.Stderr

// Load reads the config file. A missing file yields an empty config; an
// unparseable one is reported on stderr and replaced with an empty
// config so installation can proceed (the original is kept by Backup).
func Load(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		return map[string]any{}
	}

	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(warnOutput, "Warning: existing config at %s is not valid JSON, starting fresh: %v\n", path, err)
		return map[string]any{}
	}
	return cfg
}

// Install writes entry under mcpServers/github-mcp-agent in the config
// at path, creating directories as needed and backing up any existing
// file first. Entries for other servers are preserved.
func Install(path string, entry ServerEntry) (backupPath string, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("claude: create config dir: %w", err)
	}

	backupPath, err = Backup(path)
	if err != nil {
		return "", err
	}

	cfg := Load(path)
	servers, ok := cfg["mcpServers"].(map[string]any)
	if !ok {
		servers = map[string]any{}
		cfg["mcpServers"] = servers
	}
	servers[ServerName] = entry

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("claude: marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("claude: write config: %w", err)
	}
	return backupPath, nil
}

// Installed reports whether the agent's server entry is present in the
// config at path.
func Installed(path string) bool {
	cfg := Load(path)
	servers, ok := cfg["mcpServers"].(map[string]any)
	if !ok {
		return false
	}
	_, ok = servers[ServerName]
	return ok
}
