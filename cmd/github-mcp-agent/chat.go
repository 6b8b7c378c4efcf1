package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spetersoncode/github-mcp-agent/agent"
	"github.com/spetersoncode/github-mcp-agent/config"
	"github.com/spetersoncode/github-mcp-agent/provider"
	"github.com/spetersoncode/github-mcp-agent/store"
)

// demoQueries exercise each capability when --demo-queries is set.
var demoQueries = []string{
	"What can you help me with?",
	"Add 15 and 27",
	"Multiply 8 by 9",
	"Calculate 10 plus 5, then multiply by 2",
}

var chatDemoQueries bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive agent session",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&chatDemoQueries, "demo-queries", false, "run the scripted demo queries before the interactive prompt")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	p := provider.NewWithFallback(cmd.Context(), cfg)
	a := agent.New(p, agent.BuiltinRegistry(cfg, true), store.NewMemoryAdapter())

	fmt.Printf("GitHub MCP Agent (provider: %s)\n", cfg.Provider)
	fmt.Println("Type 'quit', 'exit', or 'q' to leave.")

	runOpts := []agent.Option{
		agent.WithMaxSteps(cfg.MaxSteps),
		agent.WithTimeout(cfg.Timeout),
	}

	if chatDemoQueries {
		for _, query := range demoQueries {
			fmt.Printf("\n> %s\n", query)
			if err := runTurn(cmd, a, query, runOpts); err != nil {
				return err
			}
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return nil
		}

		if err := runTurn(cmd, a, input, runOpts); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// runTurn streams one agent exchange to the terminal. Provider errors
// end the turn, not the session.
func runTurn(cmd *cobra.Command, a *agent.Agent, input string, opts []agent.Option) error {
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	for ev := range a.SendStream(cmd.Context(), input, opts...) {
		switch ev.Type {
		case agent.EventStreamDelta:
			fmt.Print(ev.Delta)
		case agent.EventToolCallRequested:
			fmt.Printf("\n[tool] %s(%s)\n", ev.ToolCall.Name, ev.ToolCall.Arguments)
		case agent.EventToolResult:
			fmt.Printf("[result] %s\n", ev.ToolResult.Content)
		case agent.EventAgentComplete:
			fmt.Println()
		case agent.EventError:
			fmt.Fprintf(os.Stderr, "error: %v\n", ev.Error)
		}
	}
	return nil
}
