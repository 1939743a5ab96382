package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the persistence surface of the app.
type Store interface {
	CreateSnippet(ctx context.Context, arg CreateSnippetParams) (Snippet, error)
	GetSnippet(ctx context.Context, id uuid.UUID) (Snippet, error)
	GetSnippetByName(ctx context.Context, name string) (Snippet, error)
	ListSnippets(ctx context.Context, arg ListSnippetsParams) ([]Snippet, error)
	UpdateSnippet(ctx context.Context, arg UpdateSnippetParams) (Snippet, error)
	DeleteSnippet(ctx context.Context, id uuid.UUID) (bool, error)
	RenameSnippetTx(ctx context.Context, arg RenameSnippetTxParams) (RenameSnippetTxResult, error)

	CreateCharacterPreset(ctx context.Context, arg CreateCharacterPresetParams) (CharacterPreset, error)
	GetCharacterPreset(ctx context.Context, id uuid.UUID) (CharacterPreset, error)
	ListCharacterPresets(ctx context.Context) ([]CharacterPreset, error)
	UpdateCharacterPreset(ctx context.Context, arg UpdateCharacterPresetParams) (CharacterPreset, error)
	DeleteCharacterPreset(ctx context.Context, id uuid.UUID) (bool, error)
	RenameCharacterPreset(ctx context.Context, id uuid.UUID, name string) (CharacterPreset, error)

	CreateMainPreset(ctx context.Context, arg CreateMainPresetParams) (MainPreset, error)
	GetMainPreset(ctx context.Context, id uuid.UUID) (MainPreset, error)
	ListMainPresets(ctx context.Context) ([]MainPreset, error)
	UpdateMainPreset(ctx context.Context, arg UpdateMainPresetParams) (MainPreset, error)
	DeleteMainPreset(ctx context.Context, id uuid.UUID) (bool, error)

	AppendGenerationRecord(ctx context.Context, arg AppendGenerationRecordParams) (GenerationRecord, error)
	GetGenerationRecord(ctx context.Context, id uuid.UUID) (GenerationRecord, error)
	ListRecentGenerationRecords(ctx context.Context, limit int32) ([]GenerationRecord, error)
	DeleteGenerationRecord(ctx context.Context, id uuid.UUID) (GenerationRecord, error)
	DeleteGenerationRecordsByDates(ctx context.Context, dates []string) (int64, error)

	SaveGenerationSettings(ctx context.Context, settings GenerationSettings) error
	LoadGenerationSettings(ctx context.Context) (GenerationSettings, bool, error)
}

// SQLStore implements Store on a Postgres pool.
type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// execTx runs fn inside a transaction, rolling back on error.
func (s *SQLStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := s.connPool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	q := New(tx)
	if err := fn(q); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx error: %v, rollback error: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}
