package orchestrator

import (
	"sync"
	"time"

	"boardroom/pkg/models"
)

// DefaultHistoryLimit is how many interactions the activity log retains.
const DefaultHistoryLimit = 100

// Interaction is one persona invocation recorded for reporting.
type Interaction struct {
	// Timestamp is when the interaction was recorded (UTC).
	Timestamp time.Time `json:"timestamp"`
	// PersonaID identifies the invoked persona.
	PersonaID string `json:"persona_id"`
	// Task is a snapshot of the payload that was handled.
	Task models.TaskPayload `json:"task"`
	// Response is a snapshot of the persona's answer.
	Response models.Response `json:"response"`
}

// ActivityLog is a bounded ring of recent interactions. Appends beyond
// capacity drop the oldest entry atomically with the append; nothing is
// ever persisted.
type ActivityLog struct {
	mu       sync.Mutex
	entries  []Interaction
	capacity int
}

// NewActivityLog creates a log retaining at most capacity entries.
// A capacity of zero or less uses DefaultHistoryLimit.
func NewActivityLog(capacity int) *ActivityLog {
	if capacity <= 0 {
		capacity = DefaultHistoryLimit
	}
	return &ActivityLog{capacity: capacity}
}

// Append records an interaction, evicting the oldest entry if the log is
// at capacity.
func (l *ActivityLog) Append(entry Interaction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
	if len(l.entries) > l.capacity {
		overflow := len(l.entries) - l.capacity
		l.entries = append(l.entries[:0:0], l.entries[overflow:]...)
	}
}

// Recent returns up to limit most recent interactions, oldest first.
// A limit of zero or less returns everything retained.
func (l *ActivityLog) Recent(limit int) []Interaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Interaction, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Len returns the number of retained interactions.
func (l *ActivityLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear drops all retained interactions.
func (l *ActivityLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
