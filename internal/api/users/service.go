package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/evgeniy-krivenko/notes-backend/internal/api/httpx"
	"github.com/evgeniy-krivenko/notes-backend/internal/entity"
)

type usersUsecase interface {
	SignUp(ctx context.Context, name, password string) (entity.User, error)
	SignIn(ctx context.Context, name, password string) (entity.User, error)
	ListUsers(ctx context.Context, page entity.Page) ([]entity.User, error)
	GetUser(ctx context.Context, id int64) (entity.User, error)
}

type Service struct {
	uc usersUsecase
}

func New(uc usersUsecase) *Service {
	return &Service{uc: uc}
}

func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/users", s.listUsers)
	r.Get("/user/{id}", s.getUser)
	r.Post("/user/signup", s.signUp)
	r.Post("/user/signin", s.signIn)
}

func (s *Service) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := httpx.Page(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	users, err := s.uc.ListUsers(r.Context(), page)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newUserResponses(users))
}

// getUser answers an unknown id with a JSON null rather than an error.
func (s *Service) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	user, err := s.uc.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			httpx.JSON(w, http.StatusOK, nil)
			return
		}
		httpx.Error(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newUserResponse(user))
}

func (s *Service) signUp(w http.ResponseWriter, r *http.Request) {
	var req UserCreate
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}

	user, err := s.uc.SignUp(r.Context(), req.Name, req.Password)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newUserResponse(user))
}

func (s *Service) signIn(w http.ResponseWriter, r *http.Request) {
	var req UserCreate
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}

	user, err := s.uc.SignIn(r.Context(), req.Name, req.Password)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newUserResponse(user))
}
