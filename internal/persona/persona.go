// Package persona implements the specialized responder identities that the
// orchestrator routes work to. Each persona wraps prompt construction over
// a shared model backend and answers in one of two modes: brief (short,
// structured, used for consensus) or full (dispatched on the task type).
package persona

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"boardroom/internal/backend"
	"boardroom/pkg/models"
)

// Known task types. Each persona declares the subset it has a specialized
// prompt for; anything else falls through to the persona's default prompt.
const (
	TypeBrief = "brief"

	TypeProjectApproval    = "project_approval"
	TypeStrategyMeeting    = "strategy_meeting"
	TypeResourceAllocation = "resource_allocation"
	TypeTeamReview         = "team_review"
	TypeCrisisManagement   = "crisis_management"
	TypeMarketAnalysis     = "market_analysis"
	TypeVisionSetting      = "vision_setting"

	TypeCodeReview          = "code_review"
	TypeArchitectureDesign  = "architecture_design"
	TypeBugFix              = "bug_fix"
	TypeFeatureImpl         = "feature_implementation"
	TypeTechnicalAssessment = "technical_assessment"
	TypePerformance         = "performance_optimization"
	TypeSecurityAudit       = "security_audit"
	TypeTechStack           = "tech_stack_recommendation"

	TypeDesignConcept      = "design_concept"
	TypeUIReview           = "ui_review"
	TypeUXAssessment       = "ux_assessment"
	TypeWireframe          = "wireframe"
	TypeDesignSystem       = "design_system"
	TypeUserResearch       = "user_research"
	TypeAccessibilityAudit = "accessibility_audit"

	TypeProjectPlanning  = "project_planning"
	TypeTimelineCreation = "timeline_creation"
	TypeRiskAssessment   = "risk_assessment"
	TypeSprintPlanning   = "sprint_planning"
	TypeProgressUpdate   = "progress_update"
	TypeMilestoneReview  = "milestone_review"
)

// Definition describes a persona: its identity, routing keywords and
// prompt templates. Definitions are plain data so teams can be declared
// in YAML as well as in code.
type Definition struct {
	// ID is the stable identifier used by routing and callers.
	ID string `yaml:"id"`
	// Name is the persona's display name.
	Name string `yaml:"name"`
	// Role is the persona's role label.
	Role string `yaml:"role"`
	// Personality colors the persona's responses.
	Personality string `yaml:"personality"`
	// Skills lists the persona's areas of expertise.
	Skills []string `yaml:"skills,omitempty"`
	// Keywords drive routing: a task whose content mentions more of
	// these than any other persona's is routed here.
	Keywords []string `yaml:"keywords"`
	// FocusAreas steer brief responses.
	FocusAreas []string `yaml:"focus_areas,omitempty"`
	// BriefFormat describes the expected shape of brief replies.
	BriefFormat string `yaml:"brief_format,omitempty"`
	// Prompts maps task types to specialized prompt templates.
	// Templates may reference {content}, {context}, {name}, {role} and
	// any payload field as {field:key}.
	Prompts map[string]string `yaml:"prompts,omitempty"`
	// DefaultPrompt is the fallback template for unrecognized task types.
	DefaultPrompt string `yaml:"default_prompt,omitempty"`
}

// Validate checks that the definition is usable.
func (d Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("persona id is required")
	}
	if d.Role == "" {
		return fmt.Errorf("persona %q: role is required", d.ID)
	}
	if len(d.Keywords) == 0 {
		return fmt.Errorf("persona %q: at least one routing keyword is required", d.ID)
	}
	return nil
}

// TaskTypes returns the sorted task types this persona has specialized
// prompts for.
func (d Definition) TaskTypes() []string {
	types := make([]string, 0, len(d.Prompts))
	for typ := range d.Prompts {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Persona binds a definition to a model backend.
type Persona struct {
	def       Definition
	gen       backend.Generator
	extractor SignalExtractor
	now       func() time.Time
}

// New creates a persona from its definition. gen may be nil, in which
// case the persona answers with a deterministic placeholder instead of
// calling a model.
func New(def Definition, gen backend.Generator) *Persona {
	return &Persona{
		def:       def,
		gen:       gen,
		extractor: defaultExtractor{},
		now:       time.Now,
	}
}

// Definition returns the persona's definition.
func (p *Persona) Definition() Definition {
	return p.def
}

// ID returns the persona's stable identifier.
func (p *Persona) ID() string {
	return p.def.ID
}

// Handle produces a response for the task. Brief tasks take the
// constrained-length path; everything else dispatches on the task type
// with the persona's default prompt as the fallback arm.
func (p *Persona) Handle(ctx context.Context, task models.TaskPayload) (models.Response, error) {
	if task.Brief || strings.Contains(task.Type, TypeBrief) {
		return p.HandleBrief(ctx, task)
	}

	tmpl, ok := p.def.Prompts[task.Type]
	if !ok {
		tmpl = p.def.DefaultPrompt
		if tmpl == "" {
			tmpl = genericPrompt
		}
	}

	content, err := p.generate(ctx, p.renderPrompt(tmpl, task))
	if err != nil {
		return models.Response{}, fmt.Errorf("persona %s: %w", p.def.ID, err)
	}

	return models.Response{
		PersonaID: p.def.ID,
		Sender:    p.def.Name,
		Role:      p.def.Role,
		Content:   content,
		Mode:      models.ModeFull,
		TaskType:  task.Type,
		Timestamp: p.now().UTC(),
	}, nil
}

// genericPrompt is the last-resort template when a persona declares no
// default of its own.
const genericPrompt = `As {role}, respond to the following request:

{content}

Draw on your expertise and be specific and actionable. Be {personality}.`

// renderPrompt fills a template with task and persona details.
func (p *Persona) renderPrompt(tmpl string, task models.TaskPayload) string {
	out := strings.NewReplacer(
		"{content}", task.Content,
		"{context}", task.Context,
		"{name}", p.def.Name,
		"{role}", p.def.Role,
		"{personality}", p.def.Personality,
	).Replace(tmpl)

	for key, value := range task.Fields {
		out = strings.ReplaceAll(out, "{field:"+key+"}", value)
	}

	var extra strings.Builder
	if len(task.Requirements) > 0 {
		extra.WriteString("\n\nRequirements:\n")
		for _, req := range task.Requirements {
			fmt.Fprintf(&extra, "- %s\n", req)
		}
	}
	if task.Context != "" && !strings.Contains(tmpl, "{context}") {
		fmt.Fprintf(&extra, "\nContext: %s\n", task.Context)
	}

	return out + extra.String()
}

// generate calls the backend, or returns the configured placeholder when
// no backend is attached.
func (p *Persona) generate(ctx context.Context, prompt string) (string, error) {
	if p.gen == nil {
		return fmt.Sprintf("[%s] No model backend configured; this is a placeholder response from %s.",
			p.def.ID, p.def.Name), nil
	}
	return p.gen.Generate(ctx, prompt)
}
