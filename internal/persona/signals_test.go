package persona

import "testing"

func TestActionItems(t *testing.T) {
	text := "The market looks good. We should implement the new API. " +
		"Weather is nice. Review the schema before launch. Build the prototype. Deploy it. Test everything."

	items := defaultExtractor{}.ActionItems(text)
	if len(items) != maxActionItems {
		t.Fatalf("got %d items, want %d", len(items), maxActionItems)
	}
	if items[0] != "We should implement the new API" {
		t.Errorf("first item = %q", items[0])
	}
}

func TestActionItemsEmpty(t *testing.T) {
	items := defaultExtractor{}.ActionItems("Nothing actionable here. Just vibes.")
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestRelevance(t *testing.T) {
	def := Definition{Keywords: []string{"code", "api", "bug", "database", "technical", "implement"}}

	tests := []struct {
		content string
		want    float64
	}{
		{"no overlap at all", 0},
		{"the api is broken", 0.2},
		{"fix the bug in the api code", 0.6},
		{"code api bug database technical implement", 1.0},
	}
	for _, tt := range tests {
		got := defaultExtractor{}.Relevance(def, tt.content)
		if got != tt.want {
			t.Errorf("Relevance(%q) = %v, want %v", tt.content, got, tt.want)
		}
	}
}

func TestRelevanceCaseInsensitive(t *testing.T) {
	def := Definition{Keywords: []string{"API"}}
	if got := (defaultExtractor{}).Relevance(def, "the api is down"); got != 0.2 {
		t.Errorf("Relevance should be case-insensitive, got %v", got)
	}
}
