package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"boardroom/internal/persona"
	"boardroom/pkg/models"
)

// fakeGen is a scriptable model backend for tests. behave inspects the
// prompt and decides the reply; the default echoes a fixed string.
type fakeGen struct {
	behave func(ctx context.Context, prompt string) (string, error)
}

func (g *fakeGen) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if g.behave != nil {
		return g.behave(ctx, prompt)
	}
	return "ok", nil
}

// failRole returns a behavior that fails any prompt addressed to the
// given role and answers everything else.
func failRole(role string) func(ctx context.Context, prompt string) (string, error) {
	return func(ctx context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "As "+role) {
			return "", fmt.Errorf("%s is offline", role)
		}
		return "fine by me", nil
	}
}

func newTestOrchestrator(t *testing.T, gen *fakeGen) *Orchestrator {
	t.Helper()
	if gen == nil {
		gen = &fakeGen{}
	}
	o, err := New(Config{
		Personas: persona.DefaultTeam(),
		Backend:  gen,
		Logger:   NopLogger(),
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return o
}

func TestNewRequiresPersonas(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("New with no personas should fail")
	}
}

func TestRouteToAgent(t *testing.T) {
	o := newTestOrchestrator(t, &fakeGen{behave: func(ctx context.Context, prompt string) (string, error) {
		return "the answer", nil
	}})

	result := o.RouteToAgent(context.Background(), "developer", models.TaskPayload{Content: "fix the api"})
	if result.Failed() {
		t.Fatalf("unexpected failure: %s", result.Error)
	}
	if result.Response.PersonaID != "developer" {
		t.Errorf("PersonaID = %q, want %q", result.Response.PersonaID, "developer")
	}
	if result.Response.Content != "the answer" {
		t.Errorf("Content = %q, want %q", result.Response.Content, "the answer")
	}
}

func TestRouteToAgentUnknownPersona(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	result := o.RouteToAgent(context.Background(), "nonexistent", models.TaskPayload{Content: "hello"})
	if !result.Failed() {
		t.Fatal("unknown persona should produce an error result")
	}
	if !strings.Contains(result.Error, "nonexistent") {
		t.Errorf("error should name the missing persona, got %q", result.Error)
	}

	want := []string{"ceo", "designer", "developer", "project_manager"}
	if len(result.AvailablePersonas) != len(want) {
		t.Fatalf("available personas = %v, want %v", result.AvailablePersonas, want)
	}
	for i, id := range want {
		if result.AvailablePersonas[i] != id {
			t.Errorf("available[%d] = %q, want %q", i, result.AvailablePersonas[i], id)
		}
	}
}

func TestRouteToAgentPersonaFailure(t *testing.T) {
	o := newTestOrchestrator(t, &fakeGen{behave: failRole("Lead Developer")})

	result := o.RouteToAgent(context.Background(), "developer", models.TaskPayload{Content: "try this"})
	if !result.Failed() {
		t.Fatal("failing persona should produce an error result, not a panic or success")
	}
	if !strings.Contains(result.Error, "developer") {
		t.Errorf("error should mention the persona, got %q", result.Error)
	}
}

func TestRouteToAgentRecordsHistory(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	o.RouteToAgent(context.Background(), "ceo", models.TaskPayload{Content: "plan"})
	history := o.History(0)
	if len(history) != 1 {
		t.Fatalf("history has %d entries, want 1", len(history))
	}
	if history[0].PersonaID != "ceo" {
		t.Errorf("history persona = %q, want %q", history[0].PersonaID, "ceo")
	}
}

func TestAnalyzeAndRoute(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	result := o.AnalyzeAndRoute(context.Background(), models.TaskPayload{Content: "we need to fix a bug in the api code"})
	if result.Failed() {
		t.Fatalf("unexpected failure: %s", result.Error)
	}
	if result.Response.PersonaID != "developer" {
		t.Errorf("routed to %q, want %q", result.Response.PersonaID, "developer")
	}
}

func TestClearHistory(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	o.RouteToAgent(context.Background(), "ceo", models.TaskPayload{Content: "x"})

	o.ClearHistory()
	if got := len(o.History(0)); got != 0 {
		t.Errorf("history after clear has %d entries, want 0", got)
	}
}

func TestSetTeamReplacesPersonas(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	defs := []persona.Definition{
		{ID: "analyst", Role: "Analyst", Keywords: []string{"data"}},
	}
	if err := o.SetTeam(defs, ""); err != nil {
		t.Fatalf("SetTeam returned error: %v", err)
	}

	ids := o.PersonaIDs()
	if len(ids) != 1 || ids[0] != "analyst" {
		t.Errorf("PersonaIDs = %v, want [analyst]", ids)
	}

	// Default falls back to the first registered persona when "ceo" is
	// absent.
	if got := o.Route("nothing matches here at all"); got != "analyst" {
		t.Errorf("default route = %q, want %q", got, "analyst")
	}
}

func TestSetTeamRejectsDuplicates(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	defs := []persona.Definition{
		{ID: "a", Role: "A", Keywords: []string{"x"}},
		{ID: "a", Role: "A2", Keywords: []string{"y"}},
	}
	if err := o.SetTeam(defs, ""); err == nil {
		t.Error("SetTeam should reject duplicate ids")
	}
}

func TestUserFacingErrorBackendDown(t *testing.T) {
	o := newTestOrchestrator(t, &fakeGen{behave: func(ctx context.Context, prompt string) (string, error) {
		return "", context.DeadlineExceeded
	}})

	// A plain context error is not a typed backend error; the message
	// still names the persona.
	result := o.RouteToAgent(context.Background(), "ceo", models.TaskPayload{Content: "hi"})
	if !result.Failed() {
		t.Fatal("expected failure")
	}
	if !strings.Contains(result.Error, "ceo") {
		t.Errorf("error should name the persona, got %q", result.Error)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("hello world", 5); got != "hello..." {
		t.Errorf("truncate long = %q", got)
	}
}

func TestRouteToAgentContextPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := newTestOrchestrator(t, &fakeGen{behave: func(ctx context.Context, prompt string) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Second):
			return "too late", nil
		}
	}})

	result := o.RouteToAgent(ctx, "ceo", models.TaskPayload{Content: "hi"})
	if !result.Failed() {
		t.Error("cancelled context should surface as a failed result")
	}
}
