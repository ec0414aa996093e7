package notes

import (
	"time"

	"github.com/evgeniy-krivenko/notes-backend/internal/entity"
)

type NoteCreate struct {
	Title   string  `json:"title"`
	Content *string `json:"content"`
}

// NoteUpdate accepts a full note; only id, title and content are read.
// ID is a pointer so that a missing id is rejected while id 0 is looked up.
type NoteUpdate struct {
	ID      *int64  `json:"id" validate:"required"`
	Title   string  `json:"title"`
	Content *string `json:"content"`
}

type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   int64     `json:"owner_id"`
}

func newNoteResponse(n entity.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		OwnerID:   n.OwnerID,
	}
}

func newNoteResponses(notes []entity.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, newNoteResponse(n))
	}

	return out
}
