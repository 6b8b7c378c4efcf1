package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spetersoncode/github-mcp-agent/internal/claude"
	"github.com/spetersoncode/github-mcp-agent/internal/launcher"
)

const usageExamples = `Usage Examples for Claude Desktop
=================================

Basic Mathematics:
  "Add 25 and 17"
  "Multiply 8 by 9"
  "What's 100 plus 200?"

Agent Information:
  "Get agent help"
  "Show system information"
  "What can you help me with?"

MCP Tools (Direct):
  "Use add_numbers tool with a=15, b=27"
  "Use multiply_numbers tool with x=6, y=7"
  "Use get_system_info tool"
`

var (
	installTest     bool
	installExamples bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register the MCP server in the Claude Desktop configuration",
	Long:  "install writes a github-mcp-agent entry into Claude Desktop's\nclaude_desktop_config.json, backing up the existing file and preserving\nany other configured MCP servers.",
	RunE:  runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installTest, "test", false, "run the setup checks instead of installing")
	installCmd.Flags().BoolVar(&installExamples, "examples", false, "print usage examples instead of installing")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	if installExamples {
		fmt.Print(usageExamples)
		return nil
	}
	if installTest {
		return runDoctor(cmd, args)
	}

	configPath, err := claude.ConfigPath()
	if err != nil {
		return err
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	resolved, err := launcher.New(dir, "serve").Resolve()
	if err != nil {
		return err
	}

	entry := claude.ServerEntry{
		Command: resolved.Argv[0],
		Args:    resolved.Argv[1:],
	}

	backup, err := claude.Install(configPath, entry)
	if err != nil {
		return err
	}

	if backup != "" {
		fmt.Printf("Backed up existing config to: %s\n", backup)
	}
	fmt.Printf("Updated Claude Desktop configuration: %s\n", configPath)
	fmt.Printf("Server command (%s): %v\n", resolved.Name, resolved.Argv)
	fmt.Println("\nNext steps:")
	fmt.Println("1. Restart the Claude Desktop application")
	fmt.Println("2. The GitHub MCP Agent will be available in Claude")
	fmt.Println("3. Try: \"Add 15 and 27\" or \"Get system info\"")
	return nil
}
