package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"boardroom/pkg/models"
)

var (
	collabPrimary    string
	collabSupporting []string
)

var collaborateCmd = &cobra.Command{
	Use:   "collaborate <task>",
	Short: "Run a structured collaboration",
	Long: `One primary persona works the task in full; supporting personas add
brief input with the primary's answer as context; a synthesis merges
everything.

Example:
  boardroom collaborate --primary developer --with designer,project_manager "plan the mobile app"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCollaborate,
}

func init() {
	collaborateCmd.Flags().StringVar(&collabPrimary, "primary", "", "Primary persona id (required)")
	collaborateCmd.Flags().StringSliceVar(&collabSupporting, "with", nil, "Supporting persona ids")
	collaborateCmd.MarkFlagRequired("primary")
}

func runCollaborate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	collab := orch.FacilitateCollaboration(context.Background(), collabPrimary, collabSupporting,
		models.TaskPayload{Content: strings.Join(args, " ")})

	printResponses(collab.Responses)

	if collab.SynthesisError != "" {
		color.Yellow("Synthesis unavailable: %s", collab.SynthesisError)
		return nil
	}
	color.New(color.FgGreen, color.Bold).Println("Synthesis")
	fmt.Println(indent(collab.Synthesis))
	return nil
}
