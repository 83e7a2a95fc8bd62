package orchestrator

import "strings"

// Route maps free-text content to the persona id best suited to handle
// it. Each persona scores one point per distinct keyword present in the
// content (case-insensitive substring match; repeated occurrence does not
// add points). The highest score wins; ties keep the earliest-registered
// persona, and a zero score falls back to the default persona. For a
// fixed team the result is fully deterministic.
func (o *Orchestrator) Route(content string) string {
	lower := strings.ToLower(content)

	o.mu.RLock()
	defer o.mu.RUnlock()

	best := o.defaultID
	bestScore := 0
	for _, id := range o.order {
		score := keywordScore(lower, o.personas[id].Definition().Keywords)
		if score > bestScore {
			best = id
			bestScore = score
		}
	}
	return best
}

// keywordScore counts distinct keywords occurring in loweredContent.
func keywordScore(loweredContent string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(loweredContent, strings.ToLower(kw)) {
			score++
		}
	}
	return score
}
