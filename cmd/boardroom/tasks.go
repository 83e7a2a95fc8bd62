package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"boardroom/internal/orchestrator"
	"boardroom/pkg/models"
)

var (
	tasksPriority string
	tasksType     string
	tasksQueued   bool
	tasksJSON     bool
)

var tasksCmd = &cobra.Command{
	Use:   "tasks <task>...",
	Short: "Run a batch of tasks through the team",
	Long: `Create a task per argument and run each to completion. Every task is
routed to the best-matching persona; failures leave the task blocked
with the error recorded.

With --queued, tasks go through the bounded background queue instead of
running sequentially.

Examples:
  boardroom tasks "fix the login bug" "design the settings page"
  boardroom tasks --priority high --queued "review the payment api"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTasks,
}

func init() {
	tasksCmd.Flags().StringVar(&tasksPriority, "priority", "", "Task priority: low, medium, high, critical")
	tasksCmd.Flags().StringVar(&tasksType, "type", "", "Task type (e.g. code_review)")
	tasksCmd.Flags().BoolVar(&tasksQueued, "queued", false, "Process through the background queue")
	tasksCmd.Flags().BoolVar(&tasksJSON, "json", false, "Print the full task records as JSON")
}

func runTasks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	priority, err := parsePriority(tasksPriority)
	if err != nil {
		return err
	}

	manager := orchestrator.NewTaskManager(orch, cfg.Tasks.QueueSize, orchestrator.NopLogger())
	ctx := context.Background()

	if tasksQueued {
		if err := runQueued(ctx, manager, args, priority); err != nil {
			return err
		}
	} else {
		for _, content := range args {
			id := manager.Create(models.TaskPayload{
				Content:  content,
				Type:     tasksType,
				Priority: priority,
			})
			if _, err := manager.AutoAssign(ctx, id); err != nil {
				return err
			}
		}
	}

	if tasksJSON {
		out, err := manager.ExportJSON()
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	printTasks(manager)
	return nil
}

// runQueued pushes every task through the background queue and waits for
// all of them to reach a terminal state.
func runQueued(ctx context.Context, manager *orchestrator.TaskManager, contents []string, priority models.TaskPriority) error {
	manager.StartQueue(ctx)
	defer manager.StopQueue()

	for _, content := range contents {
		payload := models.TaskPayload{Content: content, Type: tasksType, Priority: priority}
		if err := manager.Enqueue(payload); err != nil {
			return fmt.Errorf("enqueue %q: %w", content, err)
		}
	}

	for {
		remaining := 0
		for _, task := range manager.List("") {
			if !task.Status.Terminal() {
				remaining++
			}
		}
		if remaining == 0 && len(manager.List("")) == len(contents) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// printTasks renders every task outcome plus the registry metrics.
func printTasks(manager *orchestrator.TaskManager) {
	header := color.New(color.FgCyan, color.Bold)
	for _, task := range manager.List("") {
		header.Printf("%s", task.ID)
		fmt.Printf(" [%s] %s\n", task.Priority, task.Payload.Content)
		switch task.Status {
		case models.TaskStatusCompleted:
			color.Green("  completed by %s", task.AssignedTo)
			if task.Result != nil {
				fmt.Println(indent(task.Result.Content))
			}
		case models.TaskStatusBlocked:
			color.Red("  blocked: %s", task.Error)
		default:
			fmt.Printf("  %s\n", task.Status)
		}
		fmt.Println()
	}

	metrics := manager.Metrics()
	fmt.Printf("Total: %d", metrics.Total)
	if n := metrics.ByStatus[models.TaskStatusCompleted]; n > 0 {
		fmt.Printf(", completed: %d", n)
	}
	if n := metrics.ByStatus[models.TaskStatusBlocked]; n > 0 {
		fmt.Printf(", blocked: %d", n)
	}
	if metrics.AverageCompletion > 0 {
		fmt.Printf(", avg completion: %s", metrics.AverageCompletion.Round(time.Millisecond))
	}
	fmt.Println()
}

// parsePriority maps a flag value to a task priority. Empty means the
// registry default.
func parsePriority(s string) (models.TaskPriority, error) {
	switch strings.ToLower(s) {
	case "":
		return 0, nil
	case "low":
		return models.PriorityLow, nil
	case "medium":
		return models.PriorityMedium, nil
	case "high":
		return models.PriorityHigh, nil
	case "critical":
		return models.PriorityCritical, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", s)
	}
}
