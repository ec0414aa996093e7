package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/notes-backend/internal/entity"
	pgrepo "github.com/evgeniy-krivenko/notes-backend/internal/repository/gen"
)

func (r *Repo) CreateUser(ctx context.Context, name, password string) (entity.User, error) {
	row, err := r.db.CreateUser(ctx, pgrepo.CreateUserParams{
		Name:     name,
		Password: password,
	})
	if err != nil {
		if isUniqueViolation(err, usersNameKey) {
			return entity.User{}, entity.ErrUserAlreadyExists
		}
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	return conv.ConvertUserToEntity(row), nil
}

func (r *Repo) ListUsers(ctx context.Context, page entity.Page) ([]entity.User, error) {
	rows, err := r.db.ListUsers(ctx, pgrepo.ListUsersParams{
		PageOffset: page.Offset,
		PageLimit:  page.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return orEmpty(conv.ConvertUsersToEntity(rows)), nil
}

func (r *Repo) GetUserByID(ctx context.Context, id int64) (entity.User, error) {
	row, err := r.db.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}
		return entity.User{}, fmt.Errorf("get user by id: %w", err)
	}

	return conv.ConvertUserToEntity(row), nil
}

func (r *Repo) GetUserByName(ctx context.Context, name string) (entity.User, error) {
	row, err := r.db.GetUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}
		return entity.User{}, fmt.Errorf("get user by name: %w", err)
	}

	return conv.ConvertUserToEntity(row), nil
}
