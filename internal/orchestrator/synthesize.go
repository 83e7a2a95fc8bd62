package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"boardroom/internal/backend"
	"boardroom/pkg/models"
)

// synthesisInstruction is the fixed tail of every synthesis prompt.
const synthesisInstruction = `Create a unified response that:
1. Combines key insights from all team members
2. Resolves any conflicting recommendations
3. Provides clear, actionable next steps
4. Maintains each team member's expertise perspective`

// SynthesizeResponses merges a set of persona responses, e.g. a
// consensus round, into one coherent answer.
func (o *Orchestrator) SynthesizeResponses(ctx context.Context, responses map[string]models.Response) (string, error) {
	return o.synth.Synthesize(ctx, responses)
}

// Synthesizer merges multiple persona responses into one coherent answer
// via a secondary model call.
type Synthesizer struct {
	gen backend.Generator
}

// NewSynthesizer creates a synthesizer over the given backend. A nil
// backend makes every Synthesize call fail with a typed error.
func NewSynthesizer(gen backend.Generator) *Synthesizer {
	return &Synthesizer{gen: gen}
}

// Synthesize builds one prompt labeling each contributing response by
// persona and asks the backend to merge them. Contributions are ordered
// by persona id so the prompt is deterministic for a given input.
func (s *Synthesizer) Synthesize(ctx context.Context, responses map[string]models.Response) (string, error) {
	if s.gen == nil {
		return "", &backend.Error{
			Kind: backend.KindUnavailable,
			Op:   "synthesize",
			Err:  fmt.Errorf("no model backend configured"),
		}
	}

	ids := make([]string, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString("Synthesize these team responses into a cohesive plan:\n\n")
	for _, id := range ids {
		content := responses[id].Content
		if content == "" {
			content = "No response"
		}
		fmt.Fprintf(&b, "%s:\n%s\n\n", strings.ToUpper(id), content)
	}
	b.WriteString(synthesisInstruction)

	return s.gen.Generate(ctx, b.String())
}
