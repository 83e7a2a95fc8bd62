package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"boardroom/internal/orchestrator"
)

var (
	workflowType        string
	workflowAudience    string
	workflowRequires    []string
	workflowConstraints []string
)

var workflowCmd = &cobra.Command{
	Use:   "workflow <project name>",
	Short: "Run the project review pipeline",
	Long: `Run a proposal through the fixed review pipeline: strategic approval
(CEO), technical feasibility (developer), design concept (designer) and
project planning (project manager), in that order.

Example:
  boardroom workflow "Acme Dashboard" --type web --audience "ops teams" \
    --require "sso login" --constraint budget=50k`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkflow,
}

func init() {
	workflowCmd.Flags().StringVar(&workflowType, "type", "", "Project type (default web)")
	workflowCmd.Flags().StringVar(&workflowAudience, "audience", "", "Target audience (default general users)")
	workflowCmd.Flags().StringSliceVar(&workflowRequires, "require", nil, "Project requirement (repeatable)")
	workflowCmd.Flags().StringSliceVar(&workflowConstraints, "constraint", nil, "Constraint as key=value (repeatable)")
}

func runWorkflow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	constraints := make(map[string]string, len(workflowConstraints))
	for _, c := range workflowConstraints {
		key, value, ok := strings.Cut(c, "=")
		if !ok {
			return fmt.Errorf("invalid constraint %q, want key=value", c)
		}
		constraints[key] = value
	}

	result := orch.RunProjectWorkflow(context.Background(), orchestrator.Project{
		Name:           args[0],
		Type:           workflowType,
		TargetAudience: workflowAudience,
		Requirements:   workflowRequires,
		Constraints:    constraints,
	})

	fmt.Println(result.Summary)

	for stage, sr := range result.Stages {
		if sr.Result.Failed() {
			color.Yellow("Stage %s did not complete: %s", stage, sr.Result.Error)
		}
	}
	return nil
}
