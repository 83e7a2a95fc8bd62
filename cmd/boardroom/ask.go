package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"boardroom/internal/orchestrator"
	"boardroom/pkg/models"
)

var (
	askPersona string
	askBrief   bool
	askType    string
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Ask the team a question",
	Long: `Send a message to the team. The keyword router picks the persona
unless --persona names one explicitly.

Examples:
  boardroom ask "should we raise prices this quarter"
  boardroom ask --persona developer "is the api ready for launch"
  boardroom ask --brief "quick take on the redesign"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askPersona, "persona", "p", "", "Persona id to address directly")
	askCmd.Flags().BoolVarP(&askBrief, "brief", "b", false, "Request a short structured answer")
	askCmd.Flags().StringVarP(&askType, "type", "t", "", "Task type (e.g. code_review, design_concept)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	task := models.TaskPayload{
		Content: strings.Join(args, " "),
		Brief:   askBrief,
		Type:    askType,
	}

	ctx := context.Background()
	var result orchestrator.RouteResult
	if askPersona != "" {
		result = orch.RouteToAgent(ctx, askPersona, task)
	} else {
		result = orch.AnalyzeAndRoute(ctx, task)
	}

	return printRouteResult(result)
}

// printRouteResult renders one persona answer, or the failure with the
// available roster when the persona was unknown.
func printRouteResult(result orchestrator.RouteResult) error {
	if result.Failed() {
		color.Red("%s", result.Error)
		if len(result.AvailablePersonas) > 0 {
			fmt.Printf("Available personas: %s\n", strings.Join(result.AvailablePersonas, ", "))
		}
		return fmt.Errorf("request failed")
	}

	resp := result.Response
	header := color.New(color.FgCyan, color.Bold)
	header.Printf("%s", resp.Sender)
	color.New(color.FgHiBlack).Printf(" (%s)\n", resp.Role)
	fmt.Println(resp.Content)

	if len(resp.Suggestions) > 0 {
		fmt.Println()
		color.New(color.FgYellow).Println("Suggested next steps:")
		for _, s := range resp.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}
	return nil
}
