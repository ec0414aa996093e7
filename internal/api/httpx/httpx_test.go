package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/notes-backend/internal/entity"
)

func TestError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: name failed on required", ErrValidation), http.StatusUnprocessableEntity},
		{entity.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("usecase sign up: %w", entity.ErrUserAlreadyExists), http.StatusBadRequest},
		{entity.ErrNoteTitleTaken, http.StatusBadRequest},
		{entity.ErrConstraintViolation, http.StatusBadRequest},
		{fmt.Errorf("usecase delete note: %w", entity.ErrNoteNotFound), http.StatusBadRequest},
		{entity.ErrUserNotFound, http.StatusBadRequest},
		{errors.New("connection reset by peer"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)

			assert.Equal(t, tc.want, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.NotEmpty(t, body.Detail)
		})
	}
}

func TestError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("password=hunter2 leaked"))

	assert.NotContains(t, rec.Body.String(), "hunter2")
}

type payload struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice","password":"secret"}`))

		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, payload{Name: "alice", Password: "secret"}, p)
	})

	t.Run("missing field", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice"}`))

		var p payload
		err := DecodeJSON(r, &p)
		require.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "password failed on required")
	})

	t.Run("malformed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

		var p payload
		require.ErrorIs(t, DecodeJSON(r, &p), ErrValidation)
	})
}

func TestPathInt64(t *testing.T) {
	router := chi.NewRouter()

	var got int64
	var gotErr error
	router.Get("/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = PathInt64(r, "id")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/user/42", nil))
	require.NoError(t, gotErr)
	assert.Equal(t, int64(42), got)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/user/abc", nil))
	require.ErrorIs(t, gotErr, ErrValidation)
}

func TestPage(t *testing.T) {
	cases := []struct {
		query   string
		want    entity.Page
		wantErr bool
	}{
		{"", entity.Page{Offset: 0, Limit: 100}, false},
		{"?offset=20&limit=10", entity.Page{Offset: 20, Limit: 10}, false},
		{"?limit=0", entity.Page{Offset: 0, Limit: 0}, false},
		{"?limit=1000", entity.Page{Offset: 0, Limit: entity.MaxPageLimit}, false},
		{"?offset=2147483648", entity.Page{Offset: 2147483648, Limit: 100}, false},
		{"?offset=4294967296", entity.Page{Offset: 4294967296, Limit: 100}, false},
		{"?offset=99999999999999999999", entity.Page{Offset: math.MaxInt64, Limit: 100}, false},
		{"?offset=-1", entity.Page{}, true},
		{"?offset=-99999999999999999999", entity.Page{}, true},
		{"?offset=1e3", entity.Page{}, true},
		{"?limit=1001", entity.Page{}, true},
		{"?limit=4294967296", entity.Page{}, true},
		{"?limit=ten", entity.Page{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			got, err := Page(httptest.NewRequest(http.MethodGet, "/users"+tc.query, nil))
			if tc.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map write")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"internal server error"}`, rec.Body.String())
}
