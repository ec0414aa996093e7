package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/notes-backend/internal/entity"
	"github.com/evgeniy-krivenko/notes-backend/internal/repository/converter"
	pgrepo "github.com/evgeniy-krivenko/notes-backend/internal/repository/gen"
	"github.com/evgeniy-krivenko/notes-backend/pkg/logger/slogx"
)

func (r *Repo) CreateNote(ctx context.Context, ownerID int64, title string, content *string) (entity.Note, error) {
	row, err := r.db.CreateNote(ctx, pgrepo.CreateNoteParams{
		OwnerID: ownerID,
		Title:   title,
		Content: converter.ConvertStringPtrToText(content),
	})
	if err != nil {
		switch {
		case isUniqueViolation(err, notesTitleKey):
			return entity.Note{}, entity.ErrNoteTitleTaken
		case isForeignKeyViolation(err, notesOwnerIDFkey):
			return entity.Note{}, entity.ErrUserNotFound
		}
		return entity.Note{}, fmt.Errorf("create note: %w", err)
	}

	slogx.Debug(ctx, "success to create note", slogx.UserId(ownerID), slogx.NoteId(row.ID))

	return conv.ConvertNoteToEntity(row), nil
}

func (r *Repo) GetNote(ctx context.Context, id int64) (entity.Note, error) {
	row, err := r.db.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("get note: %w", err)
	}

	return conv.ConvertNoteToEntity(row), nil
}

func (r *Repo) GetNotesByUserID(ctx context.Context, userID int64, page entity.Page) ([]entity.Note, error) {
	rows, err := r.db.GetNotesByOwnerID(ctx, pgrepo.GetNotesByOwnerIDParams{
		OwnerID:    userID,
		PageOffset: page.Offset,
		PageLimit:  page.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get notes by user: %w", err)
	}

	return orEmpty(conv.ConvertNotesToEntity(rows)), nil
}

// UpdateNote overwrites title and content only. A missing id yields entity.ErrNoteNotFound.
func (r *Repo) UpdateNote(ctx context.Context, id int64, title string, content *string) (entity.Note, error) {
	row, err := r.db.UpdateNote(ctx, pgrepo.UpdateNoteParams{
		ID:      id,
		Title:   title,
		Content: converter.ConvertStringPtrToText(content),
	})
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return entity.Note{}, entity.ErrNoteNotFound
		case isUniqueViolation(err, notesTitleKey):
			return entity.Note{}, entity.ErrNoteTitleTaken
		}
		return entity.Note{}, fmt.Errorf("update note: %w", err)
	}

	slogx.Debug(ctx, "success to update note", slogx.NoteId(id))

	return conv.ConvertNoteToEntity(row), nil
}

// DeleteNote is a no-op for a missing id and always returns the id it was given.
func (r *Repo) DeleteNote(ctx context.Context, id int64) (int64, error) {
	if err := r.db.DeleteNote(ctx, id); err != nil {
		return 0, fmt.Errorf("delete note: %w", err)
	}

	return id, nil
}
