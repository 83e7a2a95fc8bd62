package orchestrator

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRunProjectWorkflowAllStages(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	o.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	result := o.RunProjectWorkflow(context.Background(), Project{
		Name:         "Acme",
		Type:         "mobile",
		Requirements: []string{"offline mode"},
	})

	if result.Status != "completed" {
		t.Fatalf("status = %q, want %q", result.Status, "completed")
	}
	if len(result.Stages) != len(workflowStages) {
		t.Fatalf("recorded %d stages, want %d", len(result.Stages), len(workflowStages))
	}

	wantPersonas := map[WorkflowStage]string{
		StageStrategicApproval:    "ceo",
		StageTechnicalFeasibility: "developer",
		StageDesignConcept:        "designer",
		StageProjectPlanning:      "project_manager",
	}
	for stage, want := range wantPersonas {
		sr, ok := result.Stages[stage]
		if !ok {
			t.Errorf("stage %q missing", stage)
			continue
		}
		if sr.PersonaID != want {
			t.Errorf("stage %q handled by %q, want %q", stage, sr.PersonaID, want)
		}
		if sr.Result.Failed() {
			t.Errorf("stage %q failed: %s", stage, sr.Result.Error)
		}
	}

	// Stages record in pipeline order.
	for i := 1; i < len(workflowStages); i++ {
		prev := result.Stages[workflowStages[i-1]].RecordedAt
		cur := result.Stages[workflowStages[i]].RecordedAt
		if !prev.Before(cur) {
			t.Errorf("stage %q recorded at %v, not after %q at %v",
				workflowStages[i], cur, workflowStages[i-1], prev)
		}
	}

	if !strings.Contains(result.Summary, "Strategic Approval:") {
		t.Errorf("summary missing stage heading:\n%s", result.Summary)
	}
}

func TestRunProjectWorkflowDefaults(t *testing.T) {
	gen := &fakeGen{behave: func(ctx context.Context, prompt string) (string, error) {
		return prompt, nil
	}}
	o := newTestOrchestrator(t, gen)

	result := o.RunProjectWorkflow(context.Background(), Project{})

	approval := result.Stages[StageStrategicApproval].Result.Response.Content
	if !strings.Contains(approval, "Unnamed") {
		t.Errorf("empty project name should default to Unnamed, prompt was:\n%s", approval)
	}
	concept := result.Stages[StageDesignConcept].Result.Response.Content
	if !strings.Contains(concept, "general users") {
		t.Errorf("empty audience should default to general users, prompt was:\n%s", concept)
	}
}

func TestRunProjectWorkflowContinuesPastFailedStage(t *testing.T) {
	gen := &fakeGen{behave: failRole("Lead Developer")}
	o := newTestOrchestrator(t, gen)

	result := o.RunProjectWorkflow(context.Background(), Project{Name: "Acme"})

	if !result.Stages[StageTechnicalFeasibility].Result.Failed() {
		t.Error("feasibility stage should have failed")
	}
	if result.Stages[StageProjectPlanning].Result.Failed() {
		t.Error("planning stage should run despite an earlier failure")
	}
	if result.Status != "completed" {
		t.Errorf("status = %q, want %q", result.Status, "completed")
	}
	if !strings.Contains(result.Summary, "Failed:") {
		t.Errorf("summary should flag the failed stage:\n%s", result.Summary)
	}
}
