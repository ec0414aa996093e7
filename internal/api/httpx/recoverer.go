package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/evgeniy-krivenko/notes-backend/pkg/logger/slogx"
)

// Recoverer turns a handler panic into a logged 500 with a JSON body.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			slogx.Error(r.Context(), "panic in http handler",
				slog.String("panic", fmt.Sprint(rvr)),
				slog.String("stack", string(debug.Stack())),
			)

			JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
		}()

		next.ServeHTTP(w, r)
	})
}
