package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"boardroom/pkg/models"
)

var consensusNoSynthesis bool

var consensusCmd = &cobra.Command{
	Use:   "consensus <question>",
	Short: "Ask every persona at once",
	Long: `Fan the question out to the whole team concurrently. Each persona
answers in brief mode; a synthesized summary follows unless
--no-synthesis is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConsensus,
}

func init() {
	consensusCmd.Flags().BoolVar(&consensusNoSynthesis, "no-synthesis", false, "Skip the synthesized summary")
}

func runConsensus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	task := models.TaskPayload{Content: strings.Join(args, " ")}
	consensus := orch.TeamConsensus(ctx, task)

	printResponses(consensus.Responses)

	if consensusNoSynthesis {
		return nil
	}

	synthesis, err := orch.SynthesizeResponses(ctx, consensus.Responses)
	if err != nil {
		color.Yellow("Synthesis unavailable: %v", err)
		return nil
	}
	color.New(color.FgGreen, color.Bold).Println("Team Summary")
	fmt.Println(indent(synthesis))
	return nil
}

// printResponses renders a response map in persona id order.
func printResponses(responses map[string]models.Response) {
	ids := make([]string, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	header := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)
	for _, id := range ids {
		resp := responses[id]
		if resp.Failed() {
			header.Printf("%s", personaLabel(resp, id))
			dim.Println()
			color.Red("  %s", resp.Error)
			fmt.Println()
			continue
		}
		header.Printf("%s", personaLabel(resp, id))
		dim.Printf(" (%s)\n", resp.Role)
		fmt.Println(indent(resp.Content))
		fmt.Println()
	}
}

func personaLabel(resp models.Response, id string) string {
	if resp.Sender != "" {
		return resp.Sender
	}
	return id
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
