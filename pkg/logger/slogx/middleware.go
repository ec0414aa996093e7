package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggingMiddleware logs the start and the outcome of every HTTP request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		logger := Default()

		method := slog.String("method", r.Method)
		path := slog.String("path", r.URL.Path)
		reqID := slog.String("request_id", middleware.GetReqID(ctx))

		logger.Debug(ctx, "start handling http request", method, path, reqID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		durAttr := slog.Duration("duration", time.Since(start))
		statusAttr := slog.Int("status", status)

		if status >= http.StatusInternalServerError {
			logger.Error(ctx, "finish with error", method, path, reqID, statusAttr, durAttr)
		} else {
			logger.Info(ctx, "finish success", method, path, reqID, statusAttr, durAttr)
		}
	})
}
