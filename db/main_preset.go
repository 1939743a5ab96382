package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const mainPresetColumns = `id, name, description, before_prompt, after_prompt, replace_prompt,
	uc_before, uc_after, uc_replace, created_at, updated_at`

func scanMainPreset(row pgx.Row) (MainPreset, error) {
	var p MainPreset
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

type CreateMainPresetParams struct {
	Name        string      `json:"name"`
	Description pgtype.Text `json:"description"`
	Before      pgtype.Text `json:"before"`
	After       pgtype.Text `json:"after"`
	Replace     pgtype.Text `json:"replace"`
	UCBefore    pgtype.Text `json:"uc_before"`
	UCAfter     pgtype.Text `json:"uc_after"`
	UCReplace   pgtype.Text `json:"uc_replace"`
}

func (q *Queries) CreateMainPreset(ctx context.Context, arg CreateMainPresetParams) (MainPreset, error) {
	const query = `
		INSERT INTO main_presets
			(id, name, description, before_prompt, after_prompt, replace_prompt, uc_before, uc_after, uc_replace)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + mainPresetColumns

	row := q.db.QueryRow(ctx, query,
		uuid.New(), arg.Name, arg.Description,
		arg.Before, arg.After, arg.Replace,
		arg.UCBefore, arg.UCAfter, arg.UCReplace,
	)
	return scanMainPreset(row)
}

func (q *Queries) GetMainPreset(ctx context.Context, id uuid.UUID) (MainPreset, error) {
	const query = `SELECT ` + mainPresetColumns + ` FROM main_presets WHERE id = $1`
	return scanMainPreset(q.db.QueryRow(ctx, query, id))
}

func (q *Queries) ListMainPresets(ctx context.Context) ([]MainPreset, error) {
	const query = `SELECT ` + mainPresetColumns + ` FROM main_presets ORDER BY name`

	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	presets := []MainPreset{}
	for rows.Next() {
		p, err := scanMainPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}

	return presets, rows.Err()
}

type UpdateMainPresetParams struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description pgtype.Text `json:"description"`
	Before      pgtype.Text `json:"before"`
	After       pgtype.Text `json:"after"`
	Replace     pgtype.Text `json:"replace"`
	UCBefore    pgtype.Text `json:"uc_before"`
	UCAfter     pgtype.Text `json:"uc_after"`
	UCReplace   pgtype.Text `json:"uc_replace"`
}

func (q *Queries) UpdateMainPreset(ctx context.Context, arg UpdateMainPresetParams) (MainPreset, error) {
	const query = `
		UPDATE main_presets
		SET name = $2, description = $3, before_prompt = $4, after_prompt = $5, replace_prompt = $6,
			uc_before = $7, uc_after = $8, uc_replace = $9, updated_at = now()
		WHERE id = $1
		RETURNING ` + mainPresetColumns

	row := q.db.QueryRow(ctx, query,
		arg.ID, arg.Name, arg.Description,
		arg.Before, arg.After, arg.Replace,
		arg.UCBefore, arg.UCAfter, arg.UCReplace,
	)
	return scanMainPreset(row)
}

func (q *Queries) DeleteMainPreset(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM main_presets WHERE id = $1`

	tag, err := q.db.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (q *Queries) replaceSnippetRefsInMainPresets(ctx context.Context, oldRef, newRef string) (int64, error) {
	const query = `
		UPDATE main_presets
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
