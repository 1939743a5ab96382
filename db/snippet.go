package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const snippetColumns = `id, name, category, tags, description, content, created_at, updated_at`

func scanSnippet(row pgx.Row) (Snippet, error) {
	var s Snippet
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Category,
		&s.Tags,
		&s.Description,
		&s.Content,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

type CreateSnippetParams struct {
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	Description pgtype.Text `json:"description"`
	Content     string      `json:"content"`
}

func (q *Queries) CreateSnippet(ctx context.Context, arg CreateSnippetParams) (Snippet, error) {
	const query = `
		INSERT INTO snippets (id, name, category, tags, description, content)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + snippetColumns

	tags := arg.Tags
	if tags == nil {
		tags = []string{}
	}

	row := q.db.QueryRow(ctx, query, uuid.New(), arg.Name, arg.Category, tags, arg.Description, arg.Content)
	snippet, err := scanSnippet(row)
	if isUniqueViolation(err) {
		return Snippet{}, ErrSnippetNameTaken
	}
	return snippet, err
}

func (q *Queries) GetSnippet(ctx context.Context, id uuid.UUID) (Snippet, error) {
	const query = `SELECT ` + snippetColumns + ` FROM snippets WHERE id = $1`
	return scanSnippet(q.db.QueryRow(ctx, query, id))
}

func (q *Queries) GetSnippetByName(ctx context.Context, name string) (Snippet, error) {
	const query = `SELECT ` + snippetColumns + ` FROM snippets WHERE name = $1`
	return scanSnippet(q.db.QueryRow(ctx, query, name))
}

type ListSnippetsParams struct {
	// Query matches name, description and tags, case-insensitively.
	// Empty means no filter.
	Query string `json:"query"`
	// Category filters exactly. Empty means no filter.
	Category string `json:"category"`
}

func (q *Queries) ListSnippets(ctx context.Context, arg ListSnippetsParams) ([]Snippet, error) {
	const query = `
		SELECT ` + snippetColumns + `
		FROM snippets
		WHERE ($1 = ''
			OR name ILIKE '%' || $1 || '%'
			OR coalesce(description, '') ILIKE '%' || $1 || '%'
			OR array_to_string(tags, ' ') ILIKE '%' || $1 || '%')
		AND ($2 = '' OR category = $2)
		ORDER BY name`

	rows, err := q.db.Query(ctx, query, arg.Query, arg.Category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snippets := []Snippet{}
	for rows.Next() {
		s, err := scanSnippet(rows)
		if err != nil {
			return nil, err
		}
		snippets = append(snippets, s)
	}

	return snippets, rows.Err()
}

type UpdateSnippetParams struct {
	ID          uuid.UUID   `json:"id"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	Description pgtype.Text `json:"description"`
	Content     string      `json:"content"`
}

// UpdateSnippet changes everything except the name; renames go through
// RenameSnippetTx so existing references stay valid.
func (q *Queries) UpdateSnippet(ctx context.Context, arg UpdateSnippetParams) (Snippet, error) {
	const query = `
		UPDATE snippets
		SET category = $2, tags = $3, description = $4, content = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + snippetColumns

	tags := arg.Tags
	if tags == nil {
		tags = []string{}
	}

	return scanSnippet(q.db.QueryRow(ctx, query, arg.ID, arg.Category, tags, arg.Description, arg.Content))
}

func (q *Queries) DeleteSnippet(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM snippets WHERE id = $1`

	tag, err := q.db.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (q *Queries) renameSnippet(ctx context.Context, id uuid.UUID, name string) (Snippet, error) {
	const query = `
		UPDATE snippets
		SET name = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + snippetColumns

	snippet, err := scanSnippet(q.db.QueryRow(ctx, query, id, name))
	if isUniqueViolation(err) {
		return Snippet{}, ErrSnippetNameTaken
	}
	return snippet, err
}
