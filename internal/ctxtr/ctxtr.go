package ctxtr

import (
	"context"
	"errors"
	"net/http"

	"github.com/evgeniy-krivenko/notes-backend/internal/api/httpx"
)

type ctxKey string

const UserIDKey ctxKey = "user_id"

var ErrUserNotFound = errors.New("user id is not in context")

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func UserID(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	if !ok {
		return 0, ErrUserNotFound
	}

	return userID, nil
}

// UserIDFromPath stores the integer path parameter param as the request's user id.
func UserIDFromPath(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := httpx.PathInt64(r, param)
			if err != nil {
				httpx.Error(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
