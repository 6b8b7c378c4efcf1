package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spetersoncode/github-mcp-agent/internal/launcher"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Hand this process over to the best available agent runtime",
	Long:  "launch resolves the agent runtime in strict priority order (local build,\ngo toolchain, PATH binary) and replaces the current process with it.\nAfter the handoff there is no fallback; the child owns the exit status.",
	RunE:  runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	return launcher.New(dir, "serve").Launch()
}
