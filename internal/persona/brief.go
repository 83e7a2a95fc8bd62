package persona

import (
	"context"
	"fmt"
	"strings"

	"boardroom/pkg/models"
)

// HandleBrief produces a constrained-length structured response, used for
// team consensus and quick replies.
func (p *Persona) HandleBrief(ctx context.Context, task models.TaskPayload) (models.Response, error) {
	content, err := p.generate(ctx, p.briefPrompt(task))
	if err != nil {
		return models.Response{}, fmt.Errorf("persona %s: %w", p.def.ID, err)
	}

	return models.Response{
		PersonaID:   p.def.ID,
		Sender:      p.def.Name,
		Role:        p.def.Role,
		Content:     content,
		Mode:        models.ModeBrief,
		TaskType:    task.Type,
		Confidence:  p.extractor.Relevance(p.def, task.Content),
		Suggestions: p.extractor.ActionItems(content),
		Timestamp:   p.now().UTC(),
	}, nil
}

// briefPrompt builds the short-form prompt: one insight, one
// recommendation, one next step, under 100 words.
func (p *Persona) briefPrompt(task models.TaskPayload) string {
	var b strings.Builder

	if task.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n\n", task.Context)
	}

	fmt.Fprintf(&b, "As %s, provide a brief, actionable response.\n\n", p.def.Role)
	fmt.Fprintf(&b, "Task Type: %s\n", taskTypeOrGeneral(task.Type))
	fmt.Fprintf(&b, "Question: %s\n\n", task.Content)

	if p.def.BriefFormat != "" {
		fmt.Fprintf(&b, "Response Style: %s\n", p.def.BriefFormat)
	}
	if len(p.def.FocusAreas) > 0 {
		fmt.Fprintf(&b, "Focus on: %s\n", strings.Join(p.def.FocusAreas, ", "))
	}

	b.WriteString("\nProvide:\n")
	b.WriteString("1. One key insight (1-2 lines)\n")
	b.WriteString("2. One specific recommendation (1-2 lines)\n")
	b.WriteString("3. One next step (1 line)\n\n")
	fmt.Fprintf(&b, "Be %s.\n", p.def.Personality)
	b.WriteString("\nKeep response under 100 words. Be specific and actionable.")

	return b.String()
}

func taskTypeOrGeneral(typ string) string {
	if typ == "" {
		return "general"
	}
	return typ
}
