package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"boardroom/internal/backend"
	"boardroom/internal/persona"
	"boardroom/pkg/models"
)

// DefaultCallTimeout bounds each persona invocation during fan-out.
const DefaultCallTimeout = 30 * time.Second

// Config contains the collaborators the orchestrator is built from.
// The persona table is owned by the orchestrator for its lifetime; there
// are no process-global registries.
type Config struct {
	// Personas defines the team, in registration order. Routing breaks
	// score ties in favor of earlier entries.
	Personas []persona.Definition
	// Backend is the model backend shared by personas and the
	// synthesizer. May be nil; personas then answer with placeholders.
	Backend backend.Generator
	// DefaultPersona receives tasks that match no routing keywords.
	// Defaults to "ceo", or the first registered persona if no "ceo"
	// exists.
	DefaultPersona string
	// CallTimeout bounds each persona call during consensus fan-out.
	// Defaults to DefaultCallTimeout.
	CallTimeout time.Duration
	// HistoryLimit caps the activity log. Defaults to
	// DefaultHistoryLimit.
	HistoryLimit int
	// Logger receives debug output. Nil disables logging.
	Logger *DebugLogger
}

// Orchestrator routes tasks between personas and aggregates their
// responses. All state is in-memory and scoped to this instance.
type Orchestrator struct {
	mu        sync.RWMutex
	personas  map[string]*persona.Persona
	order     []string
	defaultID string

	gen         backend.Generator
	synth       *Synthesizer
	history     *ActivityLog
	logger      *DebugLogger
	callTimeout time.Duration
	now         func() time.Time
}

// New creates an orchestrator from the given configuration.
func New(cfg Config) (*Orchestrator, error) {
	if len(cfg.Personas) == 0 {
		return nil, fmt.Errorf("at least one persona is required")
	}

	callTimeout := cfg.CallTimeout
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}

	o := &Orchestrator{
		gen:         cfg.Backend,
		synth:       NewSynthesizer(cfg.Backend),
		history:     NewActivityLog(cfg.HistoryLimit),
		logger:      cfg.Logger,
		callTimeout: callTimeout,
		now:         time.Now,
	}

	if err := o.SetTeam(cfg.Personas, cfg.DefaultPersona); err != nil {
		return nil, err
	}

	return o, nil
}

// SetTeam replaces the persona table. Used at construction and when a
// watched team file changes.
func (o *Orchestrator) SetTeam(defs []persona.Definition, defaultID string) error {
	personas := make(map[string]*persona.Persona, len(defs))
	order := make([]string, 0, len(defs))
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return err
		}
		if _, dup := personas[def.ID]; dup {
			return fmt.Errorf("duplicate persona id %q", def.ID)
		}
		personas[def.ID] = persona.New(def, o.gen)
		order = append(order, def.ID)
	}

	if defaultID == "" {
		defaultID = "ceo"
	}
	if _, ok := personas[defaultID]; !ok {
		defaultID = order[0]
	}

	o.mu.Lock()
	o.personas = personas
	o.order = order
	o.defaultID = defaultID
	o.mu.Unlock()

	o.logger.Log("team set: %d personas, default %s", len(order), defaultID)
	return nil
}

// PersonaIDs returns the registered persona ids in registration order.
func (o *Orchestrator) PersonaIDs() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]string(nil), o.order...)
}

// Persona returns the persona registered under id, or nil.
func (o *Orchestrator) Persona(id string) *persona.Persona {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.personas[id]
}

// History returns up to limit recent interactions, oldest first.
func (o *Orchestrator) History(limit int) []Interaction {
	return o.history.Recent(limit)
}

// ClearHistory drops the recorded interaction history.
func (o *Orchestrator) ClearHistory() {
	o.history.Clear()
}

// RouteResult is the well-formed outcome of a single-route invocation.
// Callers always receive one; persona and lookup failures surface in the
// Error field rather than as panics.
type RouteResult struct {
	// Response is the persona's answer. Zero-valued when Error is set
	// for an unknown persona.
	Response models.Response `json:"response"`
	// Error describes what went wrong, empty on success.
	Error string `json:"error,omitempty"`
	// AvailablePersonas lists the registered ids when the requested one
	// was unknown.
	AvailablePersonas []string `json:"available_personas,omitempty"`
}

// Failed returns true if the invocation did not produce a usable
// response.
func (r RouteResult) Failed() bool {
	return r.Error != ""
}

// RouteToAgent invokes one persona directly. An unknown id yields a
// structured error result listing the available ids.
func (o *Orchestrator) RouteToAgent(ctx context.Context, personaID string, task models.TaskPayload) RouteResult {
	o.mu.RLock()
	p := o.personas[personaID]
	available := append([]string(nil), o.order...)
	o.mu.RUnlock()

	if p == nil {
		sort.Strings(available)
		o.logger.Log("route: persona %q not found", personaID)
		return RouteResult{
			Error:             fmt.Sprintf("persona %q not found", personaID),
			AvailablePersonas: available,
		}
	}

	resp, err := p.Handle(ctx, task)
	if err != nil {
		o.logger.Log("route: persona %s failed: %v", personaID, err)
		return RouteResult{Error: userFacingError(personaID, err)}
	}

	o.record(personaID, task, resp)
	return RouteResult{Response: resp}
}

// AnalyzeAndRoute scores the task against every persona's keywords and
// routes it to the best match, falling back to the default persona.
func (o *Orchestrator) AnalyzeAndRoute(ctx context.Context, task models.TaskPayload) RouteResult {
	id := o.Route(task.Content)
	o.logger.Log("route: %q -> %s", truncate(task.Content, 60), id)
	return o.RouteToAgent(ctx, id, task)
}

// record appends an interaction snapshot to the activity log.
func (o *Orchestrator) record(personaID string, task models.TaskPayload, resp models.Response) {
	o.history.Append(Interaction{
		Timestamp: o.now().UTC(),
		PersonaID: personaID,
		Task:      task,
		Response:  resp,
	})
}

// userFacingError turns a persona failure into a message safe to show.
func userFacingError(personaID string, err error) string {
	if backend.Unavailable(err) {
		return fmt.Sprintf("%s could not reach the model backend; please try again", personaID)
	}
	return fmt.Sprintf("error processing task with %s: %v", personaID, err)
}

// truncate shortens s for log lines.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
