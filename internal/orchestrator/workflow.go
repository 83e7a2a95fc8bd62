package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"boardroom/internal/persona"
	"boardroom/pkg/models"
)

// WorkflowStage names one phase of the project workflow pipeline.
type WorkflowStage string

const (
	// StageStrategicApproval is the CEO's go/no-go review.
	StageStrategicApproval WorkflowStage = "strategic_approval"
	// StageTechnicalFeasibility is the developer's feasibility check.
	StageTechnicalFeasibility WorkflowStage = "technical_feasibility"
	// StageDesignConcept is the designer's concept pass.
	StageDesignConcept WorkflowStage = "design_concept"
	// StageProjectPlanning is the project manager's plan.
	StageProjectPlanning WorkflowStage = "project_planning"
)

// workflowStages is the fixed review sequence. The order is an invariant:
// strategy before feasibility before design before planning.
var workflowStages = []WorkflowStage{
	StageStrategicApproval,
	StageTechnicalFeasibility,
	StageDesignConcept,
	StageProjectPlanning,
}

// Project describes a proposed project fed through the workflow.
type Project struct {
	// Name is the project name.
	Name string `json:"name"`
	// Type is the project kind (web, mobile, ...). Defaults to "web".
	Type string `json:"type,omitempty"`
	// TargetAudience defaults to "general users".
	TargetAudience string `json:"target_audience,omitempty"`
	// Requirements lists the known requirements.
	Requirements []string `json:"requirements,omitempty"`
	// Constraints holds known constraints as key/value pairs.
	Constraints map[string]string `json:"constraints,omitempty"`
}

// StageResult is the outcome of one workflow phase.
type StageResult struct {
	// Result is the single-route outcome for the phase.
	Result RouteResult `json:"result"`
	// PersonaID is the persona that handled the phase.
	PersonaID string `json:"persona_id"`
	// RecordedAt is when the phase result was stored; later stages
	// always record after earlier ones.
	RecordedAt time.Time `json:"recorded_at"`
}

// WorkflowResult holds the per-stage results and generated summary.
type WorkflowResult struct {
	// Project echoes the input.
	Project Project `json:"project"`
	// Stages maps each pipeline stage to its result.
	Stages map[WorkflowStage]StageResult `json:"stages"`
	// Summary is a compiled digest of all stage outputs.
	Summary string `json:"summary"`
	// Status is "completed" once all stages ran.
	Status string `json:"status"`
}

// RunProjectWorkflow runs the fixed four-stage review pipeline over the
// project: strategic approval, technical feasibility, design concept,
// then project planning. Stages run strictly in order; a failed stage is
// recorded and the pipeline continues so the caller sees every
// perspective that could be gathered.
func (o *Orchestrator) RunProjectWorkflow(ctx context.Context, project Project) WorkflowResult {
	name := project.Name
	if name == "" {
		name = "Unnamed"
	}
	projType := project.Type
	if projType == "" {
		projType = "web"
	}
	audience := project.TargetAudience
	if audience == "" {
		audience = "general users"
	}

	result := WorkflowResult{
		Project: project,
		Stages:  make(map[WorkflowStage]StageResult, len(workflowStages)),
		Status:  "initiated",
	}

	for _, stage := range workflowStages {
		personaID, payload := o.stageTask(stage, name, projType, audience, project)
		o.logger.Log("workflow %s: stage %s -> %s", name, stage, personaID)
		result.Stages[stage] = StageResult{
			Result:     o.RouteToAgent(ctx, personaID, payload),
			PersonaID:  personaID,
			RecordedAt: o.now().UTC(),
		}
	}

	result.Summary = workflowSummary(result)
	result.Status = "completed"

	return result
}

// stageTask builds the persona id and payload for one pipeline stage.
func (o *Orchestrator) stageTask(stage WorkflowStage, name, projType, audience string, project Project) (string, models.TaskPayload) {
	switch stage {
	case StageStrategicApproval:
		return "ceo", models.TaskPayload{
			Type:         persona.TypeProjectApproval,
			Content:      fmt.Sprintf("New project proposal: %s", name),
			Requirements: project.Requirements,
			Fields: map[string]string{
				"project_name": name,
				"project_type": projType,
			},
		}
	case StageTechnicalFeasibility:
		return "developer", models.TaskPayload{
			Type:         persona.TypeTechnicalAssessment,
			Content:      fmt.Sprintf("Assess technical feasibility for %s", name),
			Requirements: project.Requirements,
		}
	case StageDesignConcept:
		return "designer", models.TaskPayload{
			Type:    persona.TypeDesignConcept,
			Content: fmt.Sprintf("Design concept for %s", name),
			Fields: map[string]string{
				"project_name":    name,
				"project_type":    projType,
				"target_audience": audience,
			},
		}
	case StageProjectPlanning:
		fields := map[string]string{"project_name": name}
		for k, v := range project.Constraints {
			fields["constraint_"+k] = v
		}
		return "project_manager", models.TaskPayload{
			Type:         persona.TypeProjectPlanning,
			Content:      fmt.Sprintf("Plan the delivery of %s", name),
			Requirements: project.Requirements,
			Fields:       fields,
		}
	default:
		return o.defaultID, models.TaskPayload{Content: name}
	}
}

// workflowSummary compiles a short digest of every stage output.
func workflowSummary(result WorkflowResult) string {
	var b strings.Builder
	b.WriteString("Project Workflow Summary:\n")

	stages := make([]WorkflowStage, 0, len(result.Stages))
	for stage := range result.Stages {
		stages = append(stages, stage)
	}
	sort.Slice(stages, func(i, j int) bool {
		return result.Stages[stages[i]].RecordedAt.Before(result.Stages[stages[j]].RecordedAt)
	})

	for _, stage := range stages {
		sr := result.Stages[stage]
		title := stageTitle(stage)
		content := sr.Result.Response.Content
		if sr.Result.Failed() {
			content = "Failed: " + sr.Result.Error
		}
		fmt.Fprintf(&b, "\n%s:\n%s\n", title, truncate(content, 200))
	}

	return b.String()
}

// stageTitle renders "strategic_approval" as "Strategic Approval".
func stageTitle(stage WorkflowStage) string {
	words := strings.Split(string(stage), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
