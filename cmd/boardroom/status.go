package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusWithReport bool

var statusCmd = &cobra.Command{
	Use:   "status <project name>",
	Short: "Gather a project status from the team",
	Long: `Ask the team for a project status: the project manager reports
overall progress, then the developer and designer add technical and
design briefs.

With --report, follows up with a team activity report over the
session's interactions.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusWithReport, "report", false, "Also print the team activity report")
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	report := orch.ProjectStatus(context.Background(), args[0])
	fmt.Println(report.Content)

	if !statusWithReport {
		return nil
	}

	fmt.Println()
	team := orch.GenerateTeamReport()
	color.New(color.FgCyan, color.Bold).Println("Team Activity")
	fmt.Printf("Interactions: %d\n", team.TotalInteractions)
	if team.MostActivePersona != "" {
		fmt.Printf("Most active: %s\n", team.MostActivePersona)
	}
	if len(team.CommonTaskTypes) > 0 {
		types := make([]string, 0, len(team.CommonTaskTypes))
		for typ := range team.CommonTaskTypes {
			types = append(types, typ)
		}
		sort.Strings(types)
		fmt.Println("Task types:")
		for _, typ := range types {
			fmt.Printf("  %s: %d\n", typ, team.CommonTaskTypes[typ])
		}
	}
	return nil
}
