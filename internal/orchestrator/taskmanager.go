package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"boardroom/pkg/models"
)

// TaskManager is the in-memory task registry. It exclusively owns every
// task record: all mutation goes through its methods, under one lock.
type TaskManager struct {
	mu      sync.Mutex
	orch    *Orchestrator
	tasks   map[string]*models.Task
	order   []string
	counter int

	queue    chan models.TaskPayload
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	poll     time.Duration

	logger *DebugLogger
	now    func() time.Time
}

// DefaultQueueSize bounds the task intake queue.
const DefaultQueueSize = 64

// defaultPollTimeout is how long each queue dequeue attempt blocks before
// re-checking the stop flag.
const defaultPollTimeout = time.Second

// NewTaskManager creates a registry dispatching through orch. queueSize
// of zero or less uses DefaultQueueSize.
func NewTaskManager(orch *Orchestrator, queueSize int, logger *DebugLogger) *TaskManager {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &TaskManager{
		orch:   orch,
		tasks:  make(map[string]*models.Task),
		queue:  make(chan models.TaskPayload, queueSize),
		stop:   make(chan struct{}),
		poll:   defaultPollTimeout,
		logger: logger,
		now:    time.Now,
	}
}

// Create allocates a task id for the payload and stores a pending record.
// It never fails; ids are unique and strictly increasing.
func (m *TaskManager) Create(payload models.TaskPayload) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counter++
	id := fmt.Sprintf("TASK-%04d", m.counter)

	priority := payload.Priority
	if !priority.Valid() {
		priority = models.PriorityMedium
	}

	now := m.now().UTC()
	m.tasks[id] = &models.Task{
		ID:        id,
		Status:    models.TaskStatusPending,
		Priority:  priority,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.order = append(m.order, id)

	m.logger.Log("task %s created (%s)", id, priority)
	return id
}

// Get returns a copy of the task record.
func (m *TaskManager) Get(taskID string) (models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[taskID]
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	return *task, nil
}

// Assign hands the task to the named persona and runs it to a terminal
// outcome: completed with a result, or blocked with the failure recorded.
// The persona call is synchronous.
func (m *TaskManager) Assign(ctx context.Context, taskID, personaID string) (RouteResult, error) {
	if err := m.begin(taskID, personaID); err != nil {
		return RouteResult{}, err
	}

	result := m.orch.RouteToAgent(ctx, personaID, m.payloadOf(taskID))
	m.finish(taskID, personaID, result)
	return result, nil
}

// AutoAssign is Assign with the persona chosen by the router.
func (m *TaskManager) AutoAssign(ctx context.Context, taskID string) (RouteResult, error) {
	m.mu.Lock()
	task, ok := m.tasks[taskID]
	if !ok {
		m.mu.Unlock()
		return RouteResult{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	content := task.Payload.Content
	m.mu.Unlock()

	personaID := m.orch.Route(content)
	return m.Assign(ctx, taskID, personaID)
}

// begin transitions the task to in_progress and records the assignee.
func (m *TaskManager) begin(taskID, personaID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[taskID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if task.Status.Terminal() {
		return fmt.Errorf("%w: %s is %s", ErrTaskTerminal, taskID, task.Status)
	}

	task.Status = models.TaskStatusInProgress
	task.AssignedTo = personaID
	task.UpdatedAt = m.now().UTC()
	return nil
}

// payloadOf returns the stored payload for the task.
func (m *TaskManager) payloadOf(taskID string) models.TaskPayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tasks[taskID].Payload
}

// finish records the terminal outcome of an assignment. A failed persona
// call blocks the task with the error stored instead of leaving it stuck
// in_progress.
func (m *TaskManager) finish(taskID, personaID string, result RouteResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[taskID]
	if !ok {
		return
	}
	if task.Status.Terminal() {
		// The task was cancelled while the persona call was in flight.
		// Terminal states never change, so the late result is dropped.
		m.logger.Log("task %s already %s, dropping late result", taskID, task.Status)
		return
	}

	now := m.now().UTC()
	task.UpdatedAt = now

	if result.Failed() {
		task.Status = models.TaskStatusBlocked
		task.Error = result.Error
		m.logger.Log("task %s blocked: %s", taskID, result.Error)
		return
	}

	resp := result.Response
	task.Status = models.TaskStatusCompleted
	task.Result = &resp
	task.Error = ""
	task.CompletedAt = &now
	if resp.PersonaID != "" {
		task.AssignedTo = resp.PersonaID
	} else {
		task.AssignedTo = personaID
	}
	m.logger.Log("task %s completed by %s", taskID, task.AssignedTo)
}

// UpdateStatus overrides the task status, e.g. on external cancellation.
// Returns false for unknown tasks, unknown statuses and transitions out
// of a terminal state.
func (m *TaskManager) UpdateStatus(taskID string, status models.TaskStatus) bool {
	if !status.Valid() {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[taskID]
	if !ok {
		return false
	}
	if task.Status.Terminal() {
		return false
	}

	task.Status = status
	task.UpdatedAt = m.now().UTC()
	if status == models.TaskStatusCompleted && task.CompletedAt == nil {
		now := m.now().UTC()
		task.CompletedAt = &now
	}
	return true
}

// List returns copies of all tasks, optionally filtered by status, sorted
// by priority (critical first) with creation order as the tie-break.
func (m *TaskManager) List(status models.TaskStatus) []models.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Task, 0, len(m.order))
	for _, id := range m.order {
		task := m.tasks[id]
		if status != "" && task.Status != status {
			continue
		}
		out = append(out, *task)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// ByPersona returns copies of all tasks assigned to the persona, in
// creation order.
func (m *TaskManager) ByPersona(personaID string) []models.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Task
	for _, id := range m.order {
		if task := m.tasks[id]; task.AssignedTo == personaID {
			out = append(out, *task)
		}
	}
	return out
}

// TaskMetrics is the aggregate read-only view over the registry.
type TaskMetrics struct {
	// Total counts all tasks ever created.
	Total int `json:"total"`
	// ByStatus counts tasks per status.
	ByStatus map[models.TaskStatus]int `json:"by_status"`
	// ByPersona counts tasks per assignee; unassigned tasks count under
	// "unassigned".
	ByPersona map[string]int `json:"by_persona"`
	// AverageCompletion is the mean time from creation to completion,
	// computed only over completed tasks with a completion timestamp.
	AverageCompletion time.Duration `json:"average_completion"`
}

// Metrics aggregates the current registry state.
func (m *TaskManager) Metrics() TaskMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics := TaskMetrics{
		Total:     len(m.tasks),
		ByStatus:  make(map[models.TaskStatus]int),
		ByPersona: make(map[string]int),
	}

	var total time.Duration
	var completed int
	for _, task := range m.tasks {
		metrics.ByStatus[task.Status]++

		assignee := task.AssignedTo
		if assignee == "" {
			assignee = "unassigned"
		}
		metrics.ByPersona[assignee]++

		if task.Status == models.TaskStatusCompleted && task.CompletedAt != nil {
			total += task.CompletedAt.Sub(task.CreatedAt)
			completed++
		}
	}
	if completed > 0 {
		metrics.AverageCompletion = total / time.Duration(completed)
	}

	return metrics
}

// ExportJSON renders every task record as indented JSON, in creation
// order.
func (m *TaskManager) ExportJSON() (string, error) {
	tasks := m.List("")
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export tasks: %w", err)
	}
	return string(data), nil
}

// ExportSummary renders one line per task, in creation order.
func (m *TaskManager) ExportSummary() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var b strings.Builder
	for _, id := range m.order {
		task := m.tasks[id]
		assignee := task.AssignedTo
		if assignee == "" {
			assignee = "none"
		}
		typ := task.Payload.Type
		if typ == "" {
			typ = "general"
		}
		fmt.Fprintf(&b, "%s: %s - assigned to: %s - type: %s\n", id, task.Status, assignee, typ)
	}
	return b.String()
}
