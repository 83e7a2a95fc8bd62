package models

import "time"

// ResponseMode distinguishes brief consensus replies from full responses.
type ResponseMode string

const (
	// ModeBrief is the constrained-length structured reply format.
	ModeBrief ResponseMode = "brief"
	// ModeFull is the task-type specific long-form reply format.
	ModeFull ResponseMode = "full"
)

// Response is a persona's answer to a task.
type Response struct {
	// PersonaID identifies the responding persona (e.g. "developer").
	PersonaID string `json:"persona_id"`
	// Sender is the persona's display name.
	Sender string `json:"sender"`
	// Role is the persona's role label (e.g. "Lead Developer").
	Role string `json:"role"`
	// Content is the response text.
	Content string `json:"content"`
	// Mode records whether this was a brief or full invocation.
	Mode ResponseMode `json:"mode"`
	// TaskType echoes the task type the persona dispatched on, if any.
	TaskType string `json:"task_type,omitempty"`
	// Confidence estimates how relevant the task was to the persona's
	// expertise, in [0, 1]. Only populated for brief responses.
	Confidence float64 `json:"confidence,omitempty"`
	// Suggestions lists actionable items extracted from the content.
	Suggestions []string `json:"suggestions,omitempty"`
	// Error is set instead of Content when the persona failed or timed
	// out. A response with a non-empty Error is a placeholder entry.
	Error string `json:"error,omitempty"`
	// Timestamp is when the response was produced (UTC).
	Timestamp time.Time `json:"timestamp"`
}

// Failed returns true if this response is an error placeholder.
func (r Response) Failed() bool {
	return r.Error != ""
}
