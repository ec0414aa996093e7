package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/evgeniy-krivenko/notes-backend/internal/repository/converter"
	"github.com/evgeniy-krivenko/notes-backend/internal/repository/converter/generated"
	pgrepo "github.com/evgeniy-krivenko/notes-backend/internal/repository/gen"
	"github.com/evgeniy-krivenko/notes-backend/pkg/database"
)

const (
	usersNameKey     = "users_name_key"
	notesTitleKey    = "notes_title_key"
	notesOwnerIDFkey = "notes_owner_id_fkey"
)

var conv converter.Converter = &generated.ConverterImpl{}

type Repo struct {
	db pgrepo.Querier
}

func New(db database.Tx) *Repo {
	return &Repo{
		db: pgrepo.New(db),
	}
}

// violation reports the constraint name when err is a postgres error with the given code.
func violation(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return "", false
	}

	return pgErr.ConstraintName, true
}

func isUniqueViolation(err error, constraint string) bool {
	name, ok := violation(err, pgerrcode.UniqueViolation)
	return ok && name == constraint
}

func isForeignKeyViolation(err error, constraint string) bool {
	name, ok := violation(err, pgerrcode.ForeignKeyViolation)
	return ok && name == constraint
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
