package models

import "time"

// TaskStatus represents the current state of a task.
type TaskStatus string

const (
	// TaskStatusPending indicates the task has been created but not assigned.
	TaskStatusPending TaskStatus = "pending"
	// TaskStatusInProgress indicates the task has been handed to a persona.
	TaskStatusInProgress TaskStatus = "in_progress"
	// TaskStatusCompleted indicates the task finished with a result.
	TaskStatusCompleted TaskStatus = "completed"
	// TaskStatusBlocked indicates the task cannot proceed.
	TaskStatusBlocked TaskStatus = "blocked"
	// TaskStatusCancelled indicates the task was cancelled before completion.
	TaskStatusCancelled TaskStatus = "cancelled"
)

// Valid returns true if the status is a known value.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked, TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal returns true if no further transitions are allowed out of s.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

// TaskPriority orders task listings. It does not preempt scheduling.
type TaskPriority int

const (
	// PriorityLow is for tasks that can wait indefinitely.
	PriorityLow TaskPriority = 1
	// PriorityMedium is the default priority.
	PriorityMedium TaskPriority = 2
	// PriorityHigh is for tasks that should surface near the top of listings.
	PriorityHigh TaskPriority = 3
	// PriorityCritical is the highest priority.
	PriorityCritical TaskPriority = 4
)

// Valid returns true if the priority is in the known range.
func (p TaskPriority) Valid() bool {
	return p >= PriorityLow && p <= PriorityCritical
}

// String returns the lowercase name of the priority.
func (p TaskPriority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// TaskPayload is the caller-supplied description of a unit of work.
// The registry treats it as opaque; personas dispatch on Type.
type TaskPayload struct {
	// Type tags the task for persona-side dispatch (e.g. "code_review").
	// Empty or unrecognized types fall back to a generic handler.
	Type string `json:"type,omitempty"`
	// Content is the free-text description of the work.
	Content string `json:"content"`
	// Brief requests a constrained-length structured response.
	Brief bool `json:"brief,omitempty"`
	// Context carries prior output when a task supports another persona.
	Context string `json:"context,omitempty"`
	// Priority orders the task in listings. Defaults to medium.
	Priority TaskPriority `json:"priority,omitempty"`
	// Fields holds optional structured key/value details (project name,
	// target audience, constraints and similar).
	Fields map[string]string `json:"fields,omitempty"`
	// Requirements lists structured requirement lines, if any.
	Requirements []string `json:"requirements,omitempty"`
}

// Task is the unit of work tracked by the registry.
type Task struct {
	// ID is the unique identifier, formatted TASK-<sequence>.
	ID string `json:"id"`
	// Status is the current state of the task.
	Status TaskStatus `json:"status"`
	// Priority orders listings, critical first.
	Priority TaskPriority `json:"priority"`
	// AssignedTo is the persona id working the task, empty until assignment.
	AssignedTo string `json:"assigned_to,omitempty"`
	// Payload is the caller-supplied task description.
	Payload TaskPayload `json:"payload"`
	// Result is the persona response once the task completed.
	Result *Response `json:"result,omitempty"`
	// Error holds the failure message if the task could not complete.
	Error string `json:"error,omitempty"`
	// CreatedAt is when the task was created (UTC).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the task last changed (UTC).
	UpdatedAt time.Time `json:"updated_at"`
	// CompletedAt is set exactly when Status becomes completed.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
