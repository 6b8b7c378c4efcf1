package main

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	ai "github.com/spetersoncode/github-mcp-agent"
	"github.com/spetersoncode/github-mcp-agent/agent"
	"github.com/spetersoncode/github-mcp-agent/config"
	"github.com/spetersoncode/github-mcp-agent/internal/claude"
	"github.com/spetersoncode/github-mcp-agent/provider"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the agent's configuration and tools are usable",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type check struct {
	name string
	run  func(ctx context.Context) error
}

func runDoctor(cmd *cobra.Command, args []string) error {
	checks := []check{
		{"configuration loads", checkConfig},
		{"provider constructible", checkProvider},
		{"tool registry sane", checkRegistry},
		{"tool execution", checkToolExecution},
		{"git available", checkGit},
		{"Claude Desktop config", checkClaudeConfig},
	}

	failed := 0
	for _, c := range checks {
		if err := c.run(cmd.Context()); err != nil {
			fmt.Printf("FAIL %s: %v\n", c.name, err)
			failed++
		} else {
			fmt.Printf("ok   %s\n", c.name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	fmt.Println("\nAll checks passed.")
	return nil
}

func checkConfig(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return cfg.Validate()
}

func checkProvider(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if _, err := provider.New(ctx, cfg); err != nil {
		return fmt.Errorf("%w (chat will use mock responses)", err)
	}
	return nil
}

func checkRegistry(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	registry := agent.BuiltinRegistry(cfg, true)
	for _, name := range []string{"add_numbers", "multiply_numbers", "get_agent_help", "get_system_info"} {
		if !registry.Has(name) {
			return fmt.Errorf("missing tool %s", name)
		}
	}
	return nil
}

func checkToolExecution(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	registry := agent.BuiltinRegistry(cfg, true)
	result, err := registry.Execute(ctx, ai.ToolCall{
		ID:        "doctor",
		Name:      "add_numbers",
		Arguments: `{"a":5,"b":3}`,
	})
	if err != nil {
		return err
	}
	if result.IsError {
		return fmt.Errorf("tool returned error: %s", result.Content)
	}
	if result.Content != "Addition Result: 5 + 3 = 8" {
		return fmt.Errorf("unexpected result: %s", result.Content)
	}
	return nil
}

func checkGit(ctx context.Context) error {
	_, err := exec.LookPath("git")
	return err
}

func checkClaudeConfig(ctx context.Context) error {
	path, err := claude.ConfigPath()
	if err != nil {
		return err
	}
	if !claude.Installed(path) {
		return fmt.Errorf("not installed (run: github-mcp-agent install)")
	}
	return nil
}
