package entity

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoteNotFound   = errors.New("note not found")
	ErrNoteTitleTaken = fmt.Errorf("%w: note title already exists", ErrConstraintViolation)
)

type Note struct {
	ID        int64
	OwnerID   int64
	Title     string
	Content   *string
	CreatedAt time.Time
}
