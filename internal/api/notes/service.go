package notes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/evgeniy-krivenko/notes-backend/internal/api/httpx"
	"github.com/evgeniy-krivenko/notes-backend/internal/ctxtr"
	"github.com/evgeniy-krivenko/notes-backend/internal/entity"
)

// idParam is shared by POST /note/{id} (owner id) and DELETE /note/{id} (note id):
// chi requires one wildcard name per path segment.
const idParam = "id"

type notesUsecase interface {
	CreateNote(ctx context.Context, userID int64, title string, content *string) (entity.Note, error)
	GetNotesByUserID(ctx context.Context, userID int64, page entity.Page) ([]entity.Note, error)
	UpdateNote(ctx context.Context, id int64, title string, content *string) (entity.Note, error)
	DeleteNote(ctx context.Context, id int64) (int64, error)
}

type Service struct {
	uc notesUsecase
}

func New(uc notesUsecase) *Service {
	return &Service{uc: uc}
}

func (s *Service) RegisterRoutes(r chi.Router) {
	owned := r.With(ctxtr.UserIDFromPath(idParam))
	owned.Post("/note/{id}", s.createNote)
	owned.Get("/notes/{id}", s.listNotes)

	r.Put("/note/update", s.updateNote)
	r.Delete("/note/{id}", s.deleteNote)
}

func (s *Service) createNote(w http.ResponseWriter, r *http.Request) {
	userID, err := ctxtr.UserID(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	var req NoteCreate
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}

	note, err := s.uc.CreateNote(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newNoteResponse(note))
}

func (s *Service) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, err := ctxtr.UserID(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	page, err := httpx.Page(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	notes, err := s.uc.GetNotesByUserID(r.Context(), userID, page)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newNoteResponses(notes))
}

func (s *Service) updateNote(w http.ResponseWriter, r *http.Request) {
	var req NoteUpdate
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}

	note, err := s.uc.UpdateNote(r.Context(), *req.ID, req.Title, req.Content)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newNoteResponse(note))
}

func (s *Service) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, idParam)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	deleted, err := s.uc.DeleteNote(r.Context(), id)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, deleted)
}
