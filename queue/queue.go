// Package queue serializes generation tasks: one worker pulls tasks off a
// buffered channel and drives the executor, publishing per-task status to
// the task store.
package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RhNu/nai-codex/taskstore"
)

// DefaultSize is the submit backlog before Submit starts blocking.
const DefaultSize = 32

// Dispatcher is the queue surface the API layer uses.
type Dispatcher interface {
	Submit(ctx context.Context, task Task) error
	Status(ctx context.Context, taskID uuid.UUID) (*taskstore.Status, error)
}

type Queue struct {
	tasks     chan Task
	executor  *Executor
	statuses  taskstore.Store
	statusTTL time.Duration
}

func New(executor *Executor, statuses taskstore.Store, size int, statusTTL time.Duration) *Queue {
	if size <= 0 {
		size = DefaultSize
	}

	return &Queue{
		tasks:     make(chan Task, size),
		executor:  executor,
		statuses:  statuses,
		statusTTL: statusTTL,
	}
}

// Submit registers the task as pending and enqueues it. It blocks while the
// backlog is full, honoring ctx.
func (q *Queue) Submit(ctx context.Context, task Task) error {
	status := taskstore.Status{State: taskstore.StatePending}
	if err := q.statuses.SaveTaskStatus(ctx, task.ID, status, q.statusTTL); err != nil {
		return fmt.Errorf("save pending status: %w", err)
	}

	select {
	case q.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Status reports the current state of a task.
func (q *Queue) Status(ctx context.Context, taskID uuid.UUID) (*taskstore.Status, error) {
	return q.statuses.GetTaskStatus(ctx, taskID)
}

// Run processes tasks until ctx is canceled. It is meant to live in the
// process-wide errgroup next to the HTTP server.
func (q *Queue) Run(ctx context.Context) error {
	log.Info().Msg("task queue worker started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("task queue worker stopped")
			return nil
		case task := <-q.tasks:
			q.process(ctx, task)
		}
	}
}

func (q *Queue) process(ctx context.Context, task Task) {
	q.saveStatus(ctx, task.ID, taskstore.Status{State: taskstore.StateRunning})

	record, err := q.executor.Execute(ctx, task)
	if err != nil {
		log.Error().Err(err).Str("task_id", task.ID.String()).Msg("task failed")
		q.saveStatus(ctx, task.ID, taskstore.Status{
			State: taskstore.StateFailed,
			Error: err.Error(),
		})
		return
	}

	log.Info().Str("task_id", task.ID.String()).Int("images", len(record.Images)).Msg("task completed")
	q.saveStatus(ctx, task.ID, taskstore.Status{
		State:  taskstore.StateCompleted,
		Record: &record,
	})
}

// saveStatus logs instead of failing: a status write must never kill the
// worker mid-task.
func (q *Queue) saveStatus(ctx context.Context, taskID uuid.UUID, status taskstore.Status) {
	if err := q.statuses.SaveTaskStatus(ctx, taskID, status, q.statusTTL); err != nil {
		log.Error().Err(err).Str("task_id", taskID.String()).Msg("failed to save task status")
	}
}
