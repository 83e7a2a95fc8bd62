package orchestrator

import (
	"context"
	"fmt"

	"boardroom/pkg/models"
)

// Collaboration is the outcome of one primary persona working a task with
// supporting input from others, plus a synthesized combination.
type Collaboration struct {
	// PrimaryID is the persona that worked the task in full mode.
	PrimaryID string `json:"primary_id"`
	// SupportingIDs lists the personas consulted in brief mode.
	SupportingIDs []string `json:"supporting_ids"`
	// Task is the payload that was worked.
	Task models.TaskPayload `json:"task"`
	// Responses maps persona id to its contribution.
	Responses map[string]models.Response `json:"responses"`
	// Synthesis is the merged answer, empty if synthesis failed.
	Synthesis string `json:"synthesis,omitempty"`
	// SynthesisError is set when the secondary model call failed; the
	// individual Responses are still valid.
	SynthesisError string `json:"synthesis_error,omitempty"`
}

// FacilitateCollaboration runs the sequential collaboration pattern: the
// primary persona answers first in full mode, each supporter then replies
// in brief mode with the primary's output as context, and the synthesizer
// merges everything. The ordering is intentional; supporters depend on
// the primary's output.
func (o *Orchestrator) FacilitateCollaboration(ctx context.Context, primaryID string, supportingIDs []string, task models.TaskPayload) Collaboration {
	collab := Collaboration{
		PrimaryID:     primaryID,
		SupportingIDs: supportingIDs,
		Task:          task,
		Responses:     make(map[string]models.Response, len(supportingIDs)+1),
	}

	primary := o.RouteToAgent(ctx, primaryID, task)
	if primary.Failed() {
		collab.Responses[primaryID] = models.Response{PersonaID: primaryID, Error: primary.Error}
	} else {
		collab.Responses[primaryID] = primary.Response
	}

	for _, id := range supportingIDs {
		support := task
		support.Brief = true
		support.Context = fmt.Sprintf("Supporting %s with: %s\n\nPrimary response: %s",
			primaryID, task.Content, primary.Response.Content)

		result := o.RouteToAgent(ctx, id, support)
		if result.Failed() {
			collab.Responses[id] = models.Response{PersonaID: id, Error: result.Error}
			continue
		}
		collab.Responses[id] = result.Response
	}

	synthesis, err := o.synth.Synthesize(ctx, collab.Responses)
	if err != nil {
		o.logger.Log("collaboration: synthesis failed: %v", err)
		collab.SynthesisError = err.Error()
		return collab
	}
	collab.Synthesis = synthesis

	return collab
}
