package orchestrator

import (
	"context"
	"time"

	"github.com/google/uuid"

	"boardroom/pkg/models"
)

// Enqueue adds a payload to the bounded intake queue. It never blocks;
// a full queue returns ErrQueueFull.
func (m *TaskManager) Enqueue(payload models.TaskPayload) error {
	select {
	case m.queue <- payload:
		return nil
	default:
		return ErrQueueFull
	}
}

// StartQueue launches the background consumption loop: each cycle
// dequeues one payload (blocking up to the poll timeout), creates a task
// for it and auto-assigns it. The loop runs until StopQueue is called or
// ctx is cancelled.
func (m *TaskManager) StartQueue(ctx context.Context) {
	workerID := uuid.New().String()[:8]
	m.logger.Log("queue worker %s started", workerID)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer m.logger.Log("queue worker %s stopped", workerID)

		timer := time.NewTimer(m.poll)
		defer timer.Stop()

		for {
			// Drain the timer before reuse so Reset doesn't race a
			// pending fire.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(m.poll)

			select {
			case <-m.stop:
				return
			case <-ctx.Done():
				return
			case payload := <-m.queue:
				taskID := m.Create(payload)
				if _, err := m.AutoAssign(ctx, taskID); err != nil {
					m.logger.Log("queue worker %s: task %s: %v", workerID, taskID, err)
				}
			case <-timer.C:
				// Poll timeout; re-check stop and keep waiting.
			}
		}
	}()
}

// StopQueue stops the consumption loop and waits for it to exit. It is
// idempotent; the loop observes the stop within one poll cycle and
// in-flight persona calls are not interrupted.
func (m *TaskManager) StopQueue() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
	m.wg.Wait()
}
