package persona

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTeamFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "team.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write team file: %v", err)
	}
	return path
}

func TestLoadTeam(t *testing.T) {
	path := writeTeamFile(t, `
personas:
  - id: ceo
    name: Alex Chen
    role: Chief Executive Officer
    personality: visionary
    keywords: [strategy, vision]
    default_prompt: "As {role}, respond to {content}"
  - id: developer
    name: Sarah Kim
    role: Lead Developer
    keywords: [code, api]
`)

	defs, err := LoadTeam(path)
	if err != nil {
		t.Fatalf("LoadTeam returned error: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("loaded %d personas, want 2", len(defs))
	}
	if defs[0].ID != "ceo" || defs[1].ID != "developer" {
		t.Errorf("unexpected persona order: %q, %q", defs[0].ID, defs[1].ID)
	}
	if defs[0].DefaultPrompt == "" {
		t.Error("default_prompt should round-trip from YAML")
	}
}

func TestLoadTeamDuplicateID(t *testing.T) {
	path := writeTeamFile(t, `
personas:
  - id: ceo
    role: CEO
    keywords: [strategy]
  - id: ceo
    role: Other CEO
    keywords: [vision]
`)

	if _, err := LoadTeam(path); err == nil {
		t.Error("expected error for duplicate persona id")
	}
}

func TestLoadTeamInvalidPersona(t *testing.T) {
	path := writeTeamFile(t, `
personas:
  - id: ceo
    role: CEO
`)

	if _, err := LoadTeam(path); err == nil {
		t.Error("expected error for persona without keywords")
	}
}

func TestLoadTeamEmpty(t *testing.T) {
	path := writeTeamFile(t, "personas: []\n")
	if _, err := LoadTeam(path); err == nil {
		t.Error("expected error for empty team")
	}
}

func TestLoadTeamMissingFile(t *testing.T) {
	if _, err := LoadTeam(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
