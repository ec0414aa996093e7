// Package httpx holds the JSON plumbing shared by the HTTP handlers: body
// decoding and validation, path and query parsing, and the mapping of domain
// errors to status codes.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/evgeniy-krivenko/notes-backend/internal/entity"
	"github.com/evgeniy-krivenko/notes-backend/pkg/logger/slogx"
)

var ErrValidation = errors.New("validation failed")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})

	return v
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Headers are already sent, so an encode failure cannot be reported to the client.
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes err as a JSON error body. Domain errors map to 4xx, anything else
// is logged and hidden behind a 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := classify(err)

	if status >= http.StatusInternalServerError {
		slogx.Error(r.Context(), "unhandled request error",
			slogx.Err(err),
		)
	}

	JSON(w, status, ErrorResponse{Detail: detail})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid name or password"
	case errors.Is(err, entity.ErrUserAlreadyExists):
		return http.StatusBadRequest, "Username already registered"
	case errors.Is(err, entity.ErrNoteTitleTaken):
		return http.StatusBadRequest, "Note title already exists"
	case errors.Is(err, entity.ErrConstraintViolation):
		return http.StatusBadRequest, "Constraint violation"
	case errors.Is(err, entity.ErrNoteNotFound):
		return http.StatusBadRequest, "Note not found"
	case errors.Is(err, entity.ErrUserNotFound):
		return http.StatusBadRequest, "User not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// DecodeJSON reads the request body into v and validates it by its struct tags.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", ErrValidation, err)
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, describe(err))
	}

	return nil
}

func PathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: path parameter %s must be an integer, got %q", ErrValidation, name, raw)
	}

	return id, nil
}

var (
	offsetRule = "min=0"
	limitRule  = fmt.Sprintf("min=0,max=%d", entity.MaxPageLimit)
)

// Page reads the offset and limit query parameters, defaulting to the first 100 rows.
// An offset too large for int64 is clamped, since it can only ever select an empty window.
func Page(r *http.Request) (entity.Page, error) {
	page := entity.DefaultPage()
	values := r.URL.Query()

	if raw := values.Get("offset"); raw != "" {
		offset, err := strconv.ParseInt(raw, 10, 64)
		if err != nil && !(errors.Is(err, strconv.ErrRange) && offset > 0) {
			return entity.Page{}, fmt.Errorf("%w: query parameter offset must be an integer, got %q", ErrValidation, raw)
		}
		if err := validate.Var(offset, offsetRule); err != nil {
			return entity.Page{}, fmt.Errorf("%w: offset%s", ErrValidation, describe(err))
		}
		page.Offset = offset
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return entity.Page{}, fmt.Errorf("%w: query parameter limit must be an integer, got %q", ErrValidation, raw)
		}
		if err := validate.Var(limit, limitRule); err != nil {
			return entity.Page{}, fmt.Errorf("%w: limit%s", ErrValidation, describe(err))
		}
		page.Limit = int32(limit)
	}

	return page, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", field, fe.Tag()))
		}
	}

	return strings.Join(msgs, "; ")
}
