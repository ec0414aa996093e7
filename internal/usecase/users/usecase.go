package users

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/evgeniy-krivenko/notes-backend/internal/entity"
	"github.com/evgeniy-krivenko/notes-backend/pkg/logger/slogx"
)

type usersRepository interface {
	CreateUser(ctx context.Context, name, password string) (entity.User, error)
	ListUsers(ctx context.Context, page entity.Page) ([]entity.User, error)
	GetUserByID(ctx context.Context, id int64) (entity.User, error)
	GetUserByName(ctx context.Context, name string) (entity.User, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo usersRepository `option:"mandatory" validate:"required"`
	tx   txRunner        `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate users usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

// SignUp registers a new user. A name that is already registered, either found by the
// lookup or by the unique constraint on a concurrent insert, yields entity.ErrUserAlreadyExists.
func (u *Usecase) SignUp(ctx context.Context, name, password string) (entity.User, error) {
	var user entity.User

	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := u.repo.GetUserByName(ctx, name)
		switch {
		case err == nil:
			return entity.ErrUserAlreadyExists
		case !errors.Is(err, entity.ErrUserNotFound):
			return err
		}

		user, err = u.repo.CreateUser(ctx, name, password)
		return err
	})
	if err != nil {
		return entity.User{}, fmt.Errorf("usecase sign up: %w", err)
	}

	slogx.Info(ctx, "success to sign up", slogx.UserId(user.ID))
	return user, nil
}

// SignIn compares the password verbatim. Unknown names and wrong passwords are
// indistinguishable to the caller.
func (u *Usecase) SignIn(ctx context.Context, name, password string) (entity.User, error) {
	user, err := u.repo.GetUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return entity.User{}, entity.ErrInvalidCredentials
		}
		return entity.User{}, fmt.Errorf("usecase sign in: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		slogx.Warn(ctx, "sign in with wrong password", slogx.UserId(user.ID))
		return entity.User{}, entity.ErrInvalidCredentials
	}

	return user, nil
}

func (u *Usecase) ListUsers(ctx context.Context, page entity.Page) ([]entity.User, error) {
	users, err := u.repo.ListUsers(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("usecase list users: %w", err)
	}

	return users, nil
}

func (u *Usecase) GetUser(ctx context.Context, id int64) (entity.User, error) {
	user, err := u.repo.GetUserByID(ctx, id)
	if err != nil {
		return entity.User{}, fmt.Errorf("usecase get user: %w", err)
	}

	return user, nil
}
