package queue

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/RhNu/nai-codex/db"
	"github.com/RhNu/nai-codex/gallery"
	"github.com/RhNu/nai-codex/nai"
	"github.com/RhNu/nai-codex/prompt"
	"github.com/RhNu/nai-codex/taskstore"
)

type fakeGenerator struct {
	requests []*nai.ImageGenerationRequest
	data     []byte
	err      error
}

func (f *fakeGenerator) GenerateImage(_ context.Context, req *nai.ImageGenerationRequest) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.requests = append(f.requests, req)
	return f.data, nil
}

type fakeRecords struct {
	appended []db.AppendGenerationRecordParams
}

func (f *fakeRecords) AppendGenerationRecord(_ context.Context, arg db.AppendGenerationRecordParams) (db.GenerationRecord, error) {
	f.appended = append(f.appended, arg)
	return db.GenerationRecord{
		ID:             uuid.New(),
		TaskID:         arg.TaskID,
		RawPrompt:      arg.RawPrompt,
		ExpandedPrompt: arg.ExpandedPrompt,
		NegativePrompt: arg.NegativePrompt,
		Images:         arg.Images,
		CreatedAt:      time.Now(),
	}, nil
}

type fakePromptStorage struct {
	snippets map[string]string
}

func (f *fakePromptStorage) SnippetContent(_ context.Context, name string) (string, bool, error) {
	content, ok := f.snippets[name]
	return content, ok, nil
}

func (f *fakePromptStorage) CharacterRules(_ context.Context, _ uuid.UUID) (*prompt.CharacterRules, bool, error) {
	return nil, false, nil
}

func newTestExecutor(t *testing.T, gen *fakeGenerator, records *fakeRecords) *Executor {
	t.Helper()

	processor := prompt.NewProcessor(&fakePromptStorage{
		snippets: map[string]string{"quality": "best quality"},
	})
	return NewExecutor(processor, gen, records, gallery.NewPaths(t.TempDir()))
}

func TestExecutorExecute(t *testing.T) {
	gen := &fakeGenerator{data: []byte("png-bytes")}
	records := &fakeRecords{}
	executor := newTestExecutor(t, gen, records)

	seed := int64(42)
	task := Task{
		ID:             uuid.New(),
		RawPrompt:      "1girl, <snippet:quality>",
		NegativePrompt: "lowres",
		Count:          2,
		Params: func() GenerationParams {
			p := DefaultGenerationParams()
			p.Seed = &seed
			return p
		}(),
		CharacterSlots: []CharacterSlot{
			{Prompt: "red eyes", Enabled: true, Center: nai.Center{X: 0.3, Y: 0.7}},
			{Prompt: "ignored", Enabled: false},
		},
	}

	record, err := executor.Execute(context.Background(), task)
	require.NoError(t, err)

	require.Equal(t, task.ID, record.TaskID)
	require.Equal(t, "1girl, <snippet:quality>", record.RawPrompt)
	require.Equal(t, "1girl, best quality", record.ExpandedPrompt)
	require.Equal(t, "lowres", record.NegativePrompt)
	require.Len(t, record.Images, 2)

	require.Len(t, gen.requests, 2)
	for _, req := range gen.requests {
		require.Equal(t, "1girl, best quality", req.PromptPositive)
		require.NotNil(t, req.Seed)
		require.Equal(t, seed, *req.Seed)
		require.Len(t, req.CharacterPrompts, 1)
		require.Equal(t, "red eyes", req.CharacterPrompts[0].Prompt)
		require.Equal(t, nai.Center{X: 0.3, Y: 0.7}, req.CharacterPrompts[0].Center)
		require.True(t, req.CharacterPrompts[0].Enabled)
	}

	for _, img := range record.Images {
		require.Equal(t, uint64(seed), img.Seed)
		require.Equal(t, uint32(1024), img.Width)
	}

	require.Len(t, records.appended, 1)
}

func TestExecutorWritesImageFiles(t *testing.T) {
	gen := &fakeGenerator{data: []byte("image-data")}
	records := &fakeRecords{}

	processor := prompt.NewProcessor(&fakePromptStorage{})
	root := t.TempDir()
	executor := NewExecutor(processor, gen, records, gallery.NewPaths(root))

	record, err := executor.Execute(context.Background(), Task{
		ID:        uuid.New(),
		RawPrompt: "1girl",
		Params:    DefaultGenerationParams(),
	})
	require.NoError(t, err)
	require.Len(t, record.Images, 1)

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(record.Images[0].Path)))
	require.NoError(t, err)
	require.Equal(t, []byte("image-data"), data)
}

func TestExecutorGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exhausted")}
	records := &fakeRecords{}
	executor := newTestExecutor(t, gen, records)

	_, err := executor.Execute(context.Background(), Task{
		ID:        uuid.New(),
		RawPrompt: "1girl",
		Params:    DefaultGenerationParams(),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "quota exhausted")
	require.Empty(t, records.appended)
}

func TestExecutorRandomSeedPerImage(t *testing.T) {
	gen := &fakeGenerator{data: []byte("x")}
	records := &fakeRecords{}
	executor := newTestExecutor(t, gen, records)

	record, err := executor.Execute(context.Background(), Task{
		ID:        uuid.New(),
		RawPrompt: "1girl",
		Count:     3,
		Params:    DefaultGenerationParams(),
	})
	require.NoError(t, err)
	require.Len(t, record.Images, 3)

	for _, img := range record.Images {
		require.GreaterOrEqual(t, img.Seed, uint64(1_000_000_000))
	}
}

type memStatusStore struct {
	mu       sync.Mutex
	statuses map[uuid.UUID]taskstore.Status
}

func newMemStatusStore() *memStatusStore {
	return &memStatusStore{statuses: make(map[uuid.UUID]taskstore.Status)}
}

func (m *memStatusStore) SaveTaskStatus(_ context.Context, taskID uuid.UUID, status taskstore.Status, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses[taskID] = status
	return nil
}

func (m *memStatusStore) GetTaskStatus(_ context.Context, taskID uuid.UUID) (*taskstore.Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	status, ok := m.statuses[taskID]
	if !ok {
		return nil, taskstore.ErrStatusNotFound
	}
	return &status, nil
}

func (m *memStatusStore) DeleteTaskStatus(_ context.Context, taskID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.statuses, taskID)
	return nil
}

func TestQueueRunCompletesTask(t *testing.T) {
	gen := &fakeGenerator{data: []byte("x")}
	records := &fakeRecords{}
	executor := newTestExecutor(t, gen, records)

	statuses := newMemStatusStore()
	q := New(executor, statuses, 4, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = q.Run(ctx)
	}()

	task := Task{ID: uuid.New(), RawPrompt: "1girl", Params: DefaultGenerationParams()}
	require.NoError(t, q.Submit(ctx, task))

	require.Eventually(t, func() bool {
		status, err := q.Status(ctx, task.ID)
		return err == nil && status.State == taskstore.StateCompleted
	}, 5*time.Second, 10*time.Millisecond)

	status, err := q.Status(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, status.Record)
	require.Equal(t, task.ID, status.Record.TaskID)

	cancel()
	<-done
}

func TestQueueRunReportsFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("api down")}
	records := &fakeRecords{}
	executor := newTestExecutor(t, gen, records)

	statuses := newMemStatusStore()
	q := New(executor, statuses, 4, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = q.Run(ctx) }()

	task := Task{ID: uuid.New(), RawPrompt: "1girl", Params: DefaultGenerationParams()}
	require.NoError(t, q.Submit(ctx, task))

	require.Eventually(t, func() bool {
		status, err := q.Status(ctx, task.ID)
		return err == nil && status.State == taskstore.StateFailed
	}, 5*time.Second, 10*time.Millisecond)

	status, err := q.Status(ctx, task.ID)
	require.NoError(t, err)
	require.Contains(t, status.Error, "api down")
}

func TestQueueStatusUnknownTask(t *testing.T) {
	statuses := newMemStatusStore()
	q := New(nil, statuses, 1, time.Minute)

	_, err := q.Status(context.Background(), uuid.New())
	require.ErrorIs(t, err, taskstore.ErrStatusNotFound)
}
