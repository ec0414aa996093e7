package converter

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/evgeniy-krivenko/notes-backend/internal/entity"
	pgrepo "github.com/evgeniy-krivenko/notes-backend/internal/repository/gen"
)

// goverter:converter
// goverter:output:file ./generated/generated.go
// goverter:output:package generated
// goverter:extend ConvertTimestampzToTime
// goverter:extend ConvertTextToStringPtr
// goverter:skipCopySameType
//go:generate go run github.com/jmattheis/goverter/cmd/goverter@v1.7.0 gen .
type Converter interface {
	ConvertNoteToEntity(row pgrepo.Note) entity.Note
	ConvertNotesToEntity(rows []pgrepo.Note) []entity.Note

	ConvertUserToEntity(row pgrepo.User) entity.User
	ConvertUsersToEntity(rows []pgrepo.User) []entity.User
}

func ConvertTimestampzToTime(t pgtype.Timestamptz) time.Time {
	return t.Time
}

func ConvertTextToStringPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}

	s := t.String
	return &s
}

func ConvertStringPtrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}

	return pgtype.Text{String: *s, Valid: true}
}
