package models

import "testing"

func TestTaskStatusValid(t *testing.T) {
	valid := []TaskStatus{
		TaskStatusPending,
		TaskStatusInProgress,
		TaskStatusCompleted,
		TaskStatusBlocked,
		TaskStatusCancelled,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("status %q should be valid", s)
		}
	}

	if TaskStatus("done").Valid() {
		t.Error("status \"done\" should not be valid")
	}
	if TaskStatus("").Valid() {
		t.Error("empty status should not be valid")
	}
}

func TestTaskStatusTerminal(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		terminal bool
	}{
		{TaskStatusPending, false},
		{TaskStatusInProgress, false},
		{TaskStatusBlocked, false},
		{TaskStatusCompleted, true},
		{TaskStatusCancelled, true},
	}
	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.terminal {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}

func TestTaskPriorityOrdering(t *testing.T) {
	if !(PriorityLow < PriorityMedium && PriorityMedium < PriorityHigh && PriorityHigh < PriorityCritical) {
		t.Error("priorities should be strictly increasing low < medium < high < critical")
	}
}

func TestTaskPriorityString(t *testing.T) {
	tests := []struct {
		priority TaskPriority
		want     string
	}{
		{PriorityLow, "low"},
		{PriorityMedium, "medium"},
		{PriorityHigh, "high"},
		{PriorityCritical, "critical"},
		{TaskPriority(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.priority.String(); got != tt.want {
			t.Errorf("priority %d String() = %q, want %q", tt.priority, got, tt.want)
		}
	}
}

func TestResponseFailed(t *testing.T) {
	ok := Response{PersonaID: "ceo", Content: "ship it"}
	if ok.Failed() {
		t.Error("response without error should not be failed")
	}

	bad := Response{PersonaID: "ceo", Error: "backend unreachable"}
	if !bad.Failed() {
		t.Error("response with error should be failed")
	}
}
