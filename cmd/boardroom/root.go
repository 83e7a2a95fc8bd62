package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "boardroom",
	Short: "Multi-persona AI team orchestrator",
	Long: `Boardroom runs a virtual leadership team of AI personas: a CEO,
a lead developer, a designer and a project manager, each with their own
expertise and voice.

With no arguments, launches an interactive chat where messages are
routed to the right persona by keyword, @persona addresses someone
directly, and @team asks everyone at once.

Core capabilities:
- Routes requests to the best-matching persona
- Gathers whole-team consensus concurrently
- Runs structured collaborations and project review workflows
- Tracks tasks from creation through completion
- Loads custom persona rosters from YAML`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(consensusCmd)
	rootCmd.AddCommand(collaborateCmd)
	rootCmd.AddCommand(workflowCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
