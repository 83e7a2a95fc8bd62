package tui

import "testing"

func TestParseMention(t *testing.T) {
	known := []string{"ceo", "developer", "designer", "project_manager"}

	tests := []struct {
		input      string
		wantTarget string
		wantText   string
	}{
		{"@developer how do we cache this?", "developer", "how do we cache this?"},
		{"@ceo should we pivot", "ceo", "should we pivot"},
		{"@team ship friday?", "team", "ship friday?"},
		{"@TEAM ship friday?", "team", "ship friday?"},
		{"@Developer mixed case works", "developer", "mixed case works"},

		// Unknown mentions route normally with the text untouched.
		{"@intern get coffee", "", "@intern get coffee"},

		// No mention at all.
		{"what is our runway", "", "what is our runway"},
		{"email me at a@b.c", "", "email me at a@b.c"},
		{"  padded input  ", "", "padded input"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			target, text := ParseMention(tt.input, known)
			if target != tt.wantTarget {
				t.Errorf("ParseMention(%q) target = %q, want %q", tt.input, target, tt.wantTarget)
			}
			if text != tt.wantText {
				t.Errorf("ParseMention(%q) text = %q, want %q", tt.input, text, tt.wantText)
			}
		})
	}
}
