package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const recordColumns = `id, task_id, raw_prompt, expanded_prompt, negative_prompt, images, created_at`

func scanRecord(row pgx.Row) (GenerationRecord, error) {
	var r GenerationRecord
	var images []byte

	err := row.Scan(
		&r.ID,
		&r.TaskID,
		&r.RawPrompt,
		&r.ExpandedPrompt,
		&r.NegativePrompt,
		&images,
		&r.CreatedAt,
	)
	if err != nil {
		return GenerationRecord{}, err
	}

	if err := json.Unmarshal(images, &r.Images); err != nil {
		return GenerationRecord{}, fmt.Errorf("decode record images: %w", err)
	}

	return r, nil
}

type AppendGenerationRecordParams struct {
	TaskID         uuid.UUID      `json:"task_id"`
	RawPrompt      string         `json:"raw_prompt"`
	ExpandedPrompt string         `json:"expanded_prompt"`
	NegativePrompt string         `json:"negative_prompt"`
	Images         []GalleryImage `json:"images"`
}

func (q *Queries) AppendGenerationRecord(ctx context.Context, arg AppendGenerationRecordParams) (GenerationRecord, error) {
	const query = `
		INSERT INTO generation_records (id, task_id, raw_prompt, expanded_prompt, negative_prompt, images)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + recordColumns

	images := arg.Images
	if images == nil {
		images = []GalleryImage{}
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return GenerationRecord{}, fmt.Errorf("encode record images: %w", err)
	}

	row := q.db.QueryRow(ctx, query,
		uuid.New(), arg.TaskID, arg.RawPrompt, arg.ExpandedPrompt, arg.NegativePrompt, raw,
	)
	return scanRecord(row)
}

func (q *Queries) GetGenerationRecord(ctx context.Context, id uuid.UUID) (GenerationRecord, error) {
	const query = `SELECT ` + recordColumns + ` FROM generation_records WHERE id = $1`
	return scanRecord(q.db.QueryRow(ctx, query, id))
}

func (q *Queries) ListRecentGenerationRecords(ctx context.Context, limit int32) ([]GenerationRecord, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM generation_records
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := q.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []GenerationRecord{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// DeleteGenerationRecord removes a record and returns the deleted row so the
// caller can clean up its image files.
func (q *Queries) DeleteGenerationRecord(ctx context.Context, id uuid.UUID) (GenerationRecord, error) {
	const query = `DELETE FROM generation_records WHERE id = $1 RETURNING ` + recordColumns
	return scanRecord(q.db.QueryRow(ctx, query, id))
}

// DeleteGenerationRecordsByDates removes the records of whole gallery days.
// Files are left alone: this runs after the day's folder was archived.
func (q *Queries) DeleteGenerationRecordsByDates(ctx context.Context, dates []string) (int64, error) {
	const query = `DELETE FROM generation_records WHERE to_char(created_at, 'YYYY-MM-DD') = ANY($1)`

	tag, err := q.db.Exec(ctx, query, dates)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
