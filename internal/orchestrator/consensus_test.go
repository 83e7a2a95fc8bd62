package orchestrator

import (
	"context"
	"strings"
	"testing"
	"time"

	"boardroom/internal/persona"
	"boardroom/pkg/models"
)

func TestTeamConsensusComplete(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	consensus := o.TeamConsensus(context.Background(), models.TaskPayload{Content: "should we build this"})

	ids := o.PersonaIDs()
	if len(consensus.Responses) != len(ids) {
		t.Fatalf("consensus has %d responses, want %d", len(consensus.Responses), len(ids))
	}
	for _, id := range ids {
		resp, ok := consensus.Responses[id]
		if !ok {
			t.Errorf("missing response for persona %q", id)
			continue
		}
		if resp.Failed() {
			t.Errorf("persona %q unexpectedly failed: %s", id, resp.Error)
		}
		if resp.Mode != models.ModeBrief {
			t.Errorf("persona %q mode = %q, want %q", id, resp.Mode, models.ModeBrief)
		}
	}
	if consensus.Timestamp.IsZero() {
		t.Error("consensus timestamp should be set")
	}
}

func TestTeamConsensusFailingPersonaFlaggedNotMissing(t *testing.T) {
	o := newTestOrchestrator(t, &fakeGen{behave: failRole("Lead Developer")})

	consensus := o.TeamConsensus(context.Background(), models.TaskPayload{Content: "thoughts?"})

	if len(consensus.Responses) != 4 {
		t.Fatalf("consensus has %d responses, want 4", len(consensus.Responses))
	}

	dev, ok := consensus.Responses["developer"]
	if !ok {
		t.Fatal("failing persona must still contribute an entry")
	}
	if !dev.Failed() {
		t.Error("failing persona's entry should be error-flagged")
	}
	if dev.Content != "Unable to provide input at this time." {
		t.Errorf("placeholder content = %q", dev.Content)
	}

	for _, id := range []string{"ceo", "designer", "project_manager"} {
		if consensus.Responses[id].Failed() {
			t.Errorf("persona %q should have succeeded: %s", id, consensus.Responses[id].Error)
		}
	}
}

func TestTeamConsensusSlowPersonaTimesOut(t *testing.T) {
	slow := &fakeGen{behave: func(ctx context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "As UX/UI Designer") {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(5 * time.Second):
				return "finally", nil
			}
		}
		return "quick", nil
	}}

	o, err := New(Config{
		Personas:    persona.DefaultTeam(),
		Backend:     slow,
		CallTimeout: 50 * time.Millisecond,
		Logger:      NopLogger(),
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	start := time.Now()
	consensus := o.TeamConsensus(context.Background(), models.TaskPayload{Content: "quick poll"})
	elapsed := time.Since(start)

	if elapsed > 2*time.Second {
		t.Fatalf("one slow persona blocked the batch for %v", elapsed)
	}
	if len(consensus.Responses) != 4 {
		t.Fatalf("consensus has %d responses, want 4", len(consensus.Responses))
	}
	if !consensus.Responses["designer"].Failed() {
		t.Error("timed-out persona should contribute an error-flagged placeholder")
	}
	if consensus.Responses["ceo"].Failed() {
		t.Error("fast personas should still succeed")
	}
}

func TestTeamConsensusRecordsAllInteractions(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	o.TeamConsensus(context.Background(), models.TaskPayload{Content: "log this"})
	if got := len(o.History(0)); got != 4 {
		t.Errorf("history has %d entries after consensus, want 4", got)
	}
}

func TestTeamConsensusSurvivesMidFlightTeamSwap(t *testing.T) {
	started := make(chan struct{}, 4)
	release := make(chan struct{})
	o := newTestOrchestrator(t, &fakeGen{behave: func(ctx context.Context, prompt string) (string, error) {
		started <- struct{}{}
		<-release
		return "still here", nil
	}})

	type result struct{ c Consensus }
	done := make(chan result)
	go func() {
		done <- result{o.TeamConsensus(context.Background(), models.TaskPayload{Content: "thoughts?"})}
	}()

	for i := 0; i < 4; i++ {
		<-started
	}
	if err := o.SetTeam(persona.DefaultTeam()[:1], "ceo"); err != nil {
		t.Fatalf("SetTeam: %v", err)
	}
	close(release)
	res := <-done

	if len(res.c.Responses) != 4 {
		t.Fatalf("consensus has %d responses, want the 4 personas snapshotted at start", len(res.c.Responses))
	}
	for _, id := range []string{"ceo", "developer", "designer", "project_manager"} {
		resp, ok := res.c.Responses[id]
		if !ok {
			t.Errorf("missing response for persona %q", id)
			continue
		}
		if resp.Failed() {
			t.Errorf("persona %q unexpectedly failed: %s", id, resp.Error)
		}
	}
}
