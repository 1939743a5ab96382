package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrSnippetNameTaken = errors.New("snippet name is already taken")

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
