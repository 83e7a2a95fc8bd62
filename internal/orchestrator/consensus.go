package orchestrator

import (
	"context"
	"sync"
	"time"

	"boardroom/internal/persona"
	"boardroom/pkg/models"
)

// Consensus is the collected brief-mode input of the whole team on one
// task. Responses always contains one entry per registered persona; a
// failing or timed-out persona contributes an error-flagged placeholder.
type Consensus struct {
	// Timestamp is when the consensus was collected (UTC).
	Timestamp time.Time `json:"timestamp"`
	// Responses maps persona id to its brief response. No ordering is
	// promised to callers.
	Responses map[string]models.Response `json:"responses"`
}

// TeamConsensus fans the task out to every registered persona in brief
// mode concurrently and joins all results. One slow or failing persona
// never blocks or aborts the batch: each call is bounded by the
// orchestrator's per-call timeout and failures degrade to placeholders.
func (o *Orchestrator) TeamConsensus(ctx context.Context, task models.TaskPayload) Consensus {
	// Snapshot the persona values, not just the ids. A concurrent
	// SetTeam (the roster watcher) must not pull a persona out from
	// under an in-flight batch.
	o.mu.RLock()
	ids := append([]string(nil), o.order...)
	team := make([]*persona.Persona, len(ids))
	for i, id := range ids {
		team[i] = o.personas[id]
	}
	o.mu.RUnlock()

	type outcome struct {
		id   string
		resp models.Response
	}

	results := make(chan outcome, len(ids))
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		go func(id string, p *persona.Persona) {
			defer wg.Done()
			results <- outcome{id: id, resp: o.briefCall(ctx, p, task)}
		}(id, team[i])
	}

	wg.Wait()
	close(results)

	consensus := Consensus{
		Timestamp: o.now().UTC(),
		Responses: make(map[string]models.Response, len(ids)),
	}
	for out := range results {
		consensus.Responses[out.id] = out.resp
		o.record(out.id, task, out.resp)
	}

	return consensus
}

// briefCall invokes one persona in brief mode with the per-call timeout
// applied, degrading failure to a placeholder response.
func (o *Orchestrator) briefCall(ctx context.Context, p *persona.Persona, task models.TaskPayload) models.Response {
	callCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()

	resp, err := p.HandleBrief(callCtx, task)
	if err != nil {
		def := p.Definition()
		o.logger.Log("consensus: persona %s failed: %v", def.ID, err)
		return models.Response{
			PersonaID: def.ID,
			Sender:    def.Name,
			Role:      def.Role,
			Content:   "Unable to provide input at this time.",
			Mode:      models.ModeBrief,
			Error:     err.Error(),
			Timestamp: o.now().UTC(),
		}
	}
	return resp
}
