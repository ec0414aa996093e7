package notes

import (
	"context"
	"fmt"

	"github.com/evgeniy-krivenko/notes-backend/internal/entity"
	"github.com/evgeniy-krivenko/notes-backend/pkg/logger/slogx"
)

type notesRepository interface {
	CreateNote(ctx context.Context, ownerID int64, title string, content *string) (entity.Note, error)
	GetNote(ctx context.Context, id int64) (entity.Note, error)
	GetNotesByUserID(ctx context.Context, userID int64, page entity.Page) ([]entity.Note, error)
	UpdateNote(ctx context.Context, id int64, title string, content *string) (entity.Note, error)
	DeleteNote(ctx context.Context, id int64) (int64, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo notesRepository `option:"mandatory" validate:"required"`
	tx   txRunner        `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) CreateNote(ctx context.Context, userID int64, title string, content *string) (entity.Note, error) {
	note, err := u.repo.CreateNote(ctx, userID, title, content)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	slogx.Info(ctx, "success to create note", slogx.UserId(userID), slogx.NoteId(note.ID))
	return note, nil
}

func (u *Usecase) GetNote(ctx context.Context, id int64) (entity.Note, error) {
	note, err := u.repo.GetNote(ctx, id)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase get note: %w", err)
	}

	return note, nil
}

func (u *Usecase) GetNotesByUserID(ctx context.Context, userID int64, page entity.Page) ([]entity.Note, error) {
	notes, err := u.repo.GetNotesByUserID(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("usecase get notes by user: %w", err)
	}

	return notes, nil
}

func (u *Usecase) UpdateNote(ctx context.Context, id int64, title string, content *string) (entity.Note, error) {
	note, err := u.repo.UpdateNote(ctx, id, title, content)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase update note: %w", err)
	}

	slogx.Info(ctx, "success to update note", slogx.NoteId(id))
	return note, nil
}

// DeleteNote refuses ids that do not exist, unlike the repository delete.
func (u *Usecase) DeleteNote(ctx context.Context, id int64) (int64, error) {
	var deleted int64

	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := u.repo.GetNote(ctx, id); err != nil {
			return err
		}

		var err error
		deleted, err = u.repo.DeleteNote(ctx, id)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("usecase delete note: %w", err)
	}

	slogx.Info(ctx, "success to delete note", slogx.NoteId(id))
	return deleted, nil
}
