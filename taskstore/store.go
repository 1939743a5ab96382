// Package taskstore keeps generation task statuses in Redis. Statuses are
// transient by nature: once the record landed in Postgres the status entry
// only exists so the UI can poll, so everything is written with a TTL.
package taskstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/RhNu/nai-codex/db"
	"github.com/RhNu/nai-codex/util"
)

const taskStatusPrefix = "task_status:"

// ErrStatusNotFound means the task id is unknown or its status expired.
var ErrStatusNotFound = errors.New("task status not found or expired")

// State is the lifecycle phase of a task.
type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// Status is what the UI polls while a task runs.
type Status struct {
	State State `json:"state"`
	// Error is set for failed tasks.
	Error string `json:"error,omitempty"`
	// Record is set for completed tasks.
	Record *db.GenerationRecord `json:"record,omitempty"`
}

type Store interface {
	SaveTaskStatus(ctx context.Context, taskID uuid.UUID, status Status, ttl time.Duration) error
	GetTaskStatus(ctx context.Context, taskID uuid.UUID) (*Status, error)
	DeleteTaskStatus(ctx context.Context, taskID uuid.UUID) error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, // default "localhost:6379"
		Password: "",
		DB:       0,
	})

	return &RedisStore{client: rdb}
}

func (store *RedisStore) SaveTaskStatus(
	ctx context.Context,
	taskID uuid.UUID,
	status Status,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to serialize task status: %w", err)
	}

	key := taskStatusPrefix + taskID.String()
	return store.client.Set(ctx, key, jsonData, ttl).Err()
}

// GetTaskStatus returns ErrStatusNotFound when the key is missing or its
// TTL ran out.
func (store *RedisStore) GetTaskStatus(ctx context.Context, taskID uuid.UUID) (*Status, error) {
	key := taskStatusPrefix + taskID.String()

	jsonData, err := store.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrStatusNotFound
		}
		return nil, fmt.Errorf("failed to get task status: %w", err)
	}

	var status Status
	if err := json.Unmarshal([]byte(jsonData), &status); err != nil {
		return nil, fmt.Errorf("failed to parse task status json: %w", err)
	}

	return &status, nil
}

func (store *RedisStore) DeleteTaskStatus(ctx context.Context, taskID uuid.UUID) error {
	key := taskStatusPrefix + taskID.String()
	return store.client.Del(ctx, key).Err()
}
