package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/RhNu/nai-codex/prompt"
)

// PromptStorage adapts a Store to the processor's read-only lookup surface.
type PromptStorage struct {
	store Store
}

func NewPromptStorage(store Store) PromptStorage {
	return PromptStorage{store: store}
}

func (ps PromptStorage) SnippetContent(ctx context.Context, name string) (string, bool, error) {
	snippet, err := ps.store.GetSnippetByName(ctx, name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return snippet.Content, true, nil
}

func (ps PromptStorage) CharacterRules(ctx context.Context, id uuid.UUID) (*prompt.CharacterRules, bool, error) {
	preset, err := ps.store.GetCharacterPreset(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	rules := preset.Rules()
	return &rules, true, nil
}
