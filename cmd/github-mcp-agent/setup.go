package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const setupInstructions = `GitHub Repository Setup
=======================

1. Go to https://github.com/new
2. Repository name: github-mcp-agent
3. Description: Autonomous agent with MCP integration for Claude Desktop
4. Choose Public or Private
5. Do NOT initialize with a README, .gitignore, or license
   (this checkout already has its history)
6. Click "Create repository"

Then connect this checkout and push:

    github-mcp-agent connect <your-github-username>
`

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Print the GitHub repository bootstrap instructions",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(setupInstructions)
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
