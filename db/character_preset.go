package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const characterPresetColumns = `id, name, description, before_prompt, after_prompt, replace_prompt,
	uc_before, uc_after, uc_replace, created_at, updated_at`

func scanCharacterPreset(row pgx.Row) (CharacterPreset, error) {
	var p CharacterPreset
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Before,
		&p.After,
		&p.Replace,
		&p.UCBefore,
		&p.UCAfter,
		&p.UCReplace,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

type CreateCharacterPresetParams struct {
	Name        string      `json:"name"`
	Description pgtype.Text `json:"description"`
	Before      pgtype.Text `json:"before"`
	After       pgtype.Text `json:"after"`
	Replace     pgtype.Text `json:"replace"`
	UCBefore    pgtype.Text `json:"uc_before"`
	UCAfter     pgtype.Text `json:"uc_after"`
	UCReplace   pgtype.Text `json:"uc_replace"`
}

func (q *Queries) CreateCharacterPreset(ctx context.Context, arg CreateCharacterPresetParams) (CharacterPreset, error) {
	const query = `
		INSERT INTO character_presets
			(id, name, description, before_prompt, after_prompt, replace_prompt, uc_before, uc_after, uc_replace)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + characterPresetColumns

	row := q.db.QueryRow(ctx, query,
		uuid.New(), arg.Name, arg.Description,
		arg.Before, arg.After, arg.Replace,
		arg.UCBefore, arg.UCAfter, arg.UCReplace,
	)
	return scanCharacterPreset(row)
}

func (q *Queries) GetCharacterPreset(ctx context.Context, id uuid.UUID) (CharacterPreset, error) {
	const query = `SELECT ` + characterPresetColumns + ` FROM character_presets WHERE id = $1`
	return scanCharacterPreset(q.db.QueryRow(ctx, query, id))
}

func (q *Queries) ListCharacterPresets(ctx context.Context) ([]CharacterPreset, error) {
	const query = `SELECT ` + characterPresetColumns + ` FROM character_presets ORDER BY name`

	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	presets := []CharacterPreset{}
	for rows.Next() {
		p, err := scanCharacterPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}

	return presets, rows.Err()
}

type UpdateCharacterPresetParams struct {
	ID          uuid.UUID   `json:"id"`
	Description pgtype.Text `json:"description"`
	Before      pgtype.Text `json:"before"`
	After       pgtype.Text `json:"after"`
	Replace     pgtype.Text `json:"replace"`
	UCBefore    pgtype.Text `json:"uc_before"`
	UCAfter     pgtype.Text `json:"uc_after"`
	UCReplace   pgtype.Text `json:"uc_replace"`
}

func (q *Queries) UpdateCharacterPreset(ctx context.Context, arg UpdateCharacterPresetParams) (CharacterPreset, error) {
	const query = `
		UPDATE character_presets
		SET description = $2, before_prompt = $3, after_prompt = $4, replace_prompt = $5,
			uc_before = $6, uc_after = $7, uc_replace = $8, updated_at = now()
		WHERE id = $1
		RETURNING ` + characterPresetColumns

	row := q.db.QueryRow(ctx, query,
		arg.ID, arg.Description,
		arg.Before, arg.After, arg.Replace,
		arg.UCBefore, arg.UCAfter, arg.UCReplace,
	)
	return scanCharacterPreset(row)
}

func (q *Queries) DeleteCharacterPreset(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM character_presets WHERE id = $1`

	tag, err := q.db.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (q *Queries) RenameCharacterPreset(ctx context.Context, id uuid.UUID, name string) (CharacterPreset, error) {
	const query = `
		UPDATE character_presets
		SET name = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + characterPresetColumns

	return scanCharacterPreset(q.db.QueryRow(ctx, query, id, name))
}

// replaceSnippetRefs rewrites a snippet reference in every rewrite column of
// all character presets and reports how many rows changed.
func (q *Queries) replaceSnippetRefsInCharacterPresets(ctx context.Context, oldRef, newRef string) (int64, error) {
	const query = `
		UPDATE character_presets
		SET before_prompt = replace(before_prompt, $1, $2),
			after_prompt = replace(after_prompt, $1, $2),
			replace_prompt = replace(replace_prompt, $1, $2),
			uc_before = replace(uc_before, $1, $2),
			uc_after = replace(uc_after, $1, $2),
			uc_replace = replace(uc_replace, $1, $2),
			updated_at = now()
		WHERE before_prompt LIKE '%' || $1 || '%'
			OR after_prompt LIKE '%' || $1 || '%'
			OR replace_prompt LIKE '%' || $1 || '%'
			OR uc_before LIKE '%' || $1 || '%'
			OR uc_after LIKE '%' || $1 || '%'
			OR uc_replace LIKE '%' || $1 || '%'`

	tag, err := q.db.Exec(ctx, query, oldRef, newRef)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
