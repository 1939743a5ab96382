package util

import "github.com/jackc/pgx/v5/pgtype"

// StringToPgxText wraps a pointer string into pgtype.Text. A nil pointer maps to SQL NULL.
// The value is kept verbatim: preset rewrite fields are whitespace-sensitive.
func StringToPgxText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}

	return pgtype.Text{String: *s, Valid: true}
}

// PgxTextToString is the inverse of StringToPgxText.
func PgxTextToString(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}

	s := t.String
	return &s
}
