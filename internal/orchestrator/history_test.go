package orchestrator

import (
	"fmt"
	"testing"

	"boardroom/pkg/models"
)

func TestActivityLogEvictsOldest(t *testing.T) {
	log := NewActivityLog(DefaultHistoryLimit)

	for i := 0; i < 150; i++ {
		log.Append(Interaction{
			PersonaID: "ceo",
			Task:      models.TaskPayload{Content: fmt.Sprintf("question %d", i)},
		})
	}

	if log.Len() != DefaultHistoryLimit {
		t.Fatalf("len = %d, want %d", log.Len(), DefaultHistoryLimit)
	}

	recent := log.Recent(0)
	if got := recent[0].Task.Content; got != "question 50" {
		t.Errorf("oldest retained = %q, want %q", got, "question 50")
	}
	if got := recent[len(recent)-1].Task.Content; got != "question 149" {
		t.Errorf("newest retained = %q, want %q", got, "question 149")
	}
}

func TestActivityLogRecentLimit(t *testing.T) {
	log := NewActivityLog(DefaultHistoryLimit)
	for i := 0; i < 10; i++ {
		log.Append(Interaction{Task: models.TaskPayload{Content: fmt.Sprintf("%d", i)}})
	}

	recent := log.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("len = %d, want 3", len(recent))
	}
	// Oldest first within the window.
	want := []string{"7", "8", "9"}
	for i, w := range want {
		if recent[i].Task.Content != w {
			t.Errorf("recent[%d] = %q, want %q", i, recent[i].Task.Content, w)
		}
	}

	if got := log.Recent(100); len(got) != 10 {
		t.Errorf("oversized limit returned %d entries, want 10", len(got))
	}
}

func TestActivityLogClear(t *testing.T) {
	log := NewActivityLog(DefaultHistoryLimit)
	log.Append(Interaction{PersonaID: "ceo"})
	log.Clear()
	if log.Len() != 0 {
		t.Errorf("len after clear = %d, want 0", log.Len())
	}
}
