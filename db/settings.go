package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// settingsKey is the single row the snapshot lives under.
const settingsKey = "last_generation"

func (q *Queries) SaveGenerationSettings(ctx context.Context, settings GenerationSettings) error {
	const query = `
		INSERT INTO generation_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	_, err = q.db.Exec(ctx, query, settingsKey, raw)
	return err
}

func (q *Queries) LoadGenerationSettings(ctx context.Context) (GenerationSettings, bool, error) {
	const query = `SELECT value FROM generation_settings WHERE key = $1`

	var raw []byte
	err := q.db.QueryRow(ctx, query, settingsKey).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return GenerationSettings{}, false, nil
	}
	if err != nil {
		return GenerationSettings{}, false, err
	}

	var settings GenerationSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return GenerationSettings{}, false, fmt.Errorf("decode settings: %w", err)
	}

	return settings, true, nil
}
