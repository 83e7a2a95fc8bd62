package persona

import "strings"

// SignalExtractor pulls structured signals out of free-form model output.
// The heuristics live behind this interface so the orchestrator core never
// depends on their internals.
type SignalExtractor interface {
	// ActionItems extracts up to a few actionable sentences from text.
	ActionItems(text string) []string
	// Relevance estimates how relevant the content is to the persona's
	// expertise, in [0, 1].
	Relevance(def Definition, content string) float64
}

// actionVerbs mark sentences worth surfacing as suggestions.
var actionVerbs = []string{
	"create", "develop", "implement", "review", "analyze",
	"design", "build", "test", "deploy", "plan",
}

// maxActionItems caps how many suggestions a single response yields.
const maxActionItems = 3

// defaultExtractor is the keyword-heuristic extractor used unless a
// persona is constructed with a custom one.
type defaultExtractor struct{}

// ActionItems returns sentences containing an action verb, at most
// maxActionItems of them.
func (defaultExtractor) ActionItems(text string) []string {
	var items []string
	for _, sentence := range strings.Split(text, ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, verb := range actionVerbs {
			if strings.Contains(lower, verb) {
				items = append(items, sentence)
				break
			}
		}
		if len(items) == maxActionItems {
			break
		}
	}
	return items
}

// Relevance scores 0.2 per distinct persona keyword present in the
// content, capped at 1.0.
func (defaultExtractor) Relevance(def Definition, content string) float64 {
	lower := strings.ToLower(content)
	score := 0.0
	for _, kw := range def.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			score += 0.2
		}
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}
