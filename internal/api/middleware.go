package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"moujaz/internal/logger"
)

type ctxKey string

const requestIDKey ctxKey = "reqid"

// RequestID returns the request ID stored by the middleware, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithRequestID tags every request with a UUID and logs method, path,
// and duration.
func WithRequestID(log *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey, reqID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		log.Info("[%s] %s %s (%s)", reqID, r.Method, r.URL.Path, time.Since(start))
	})
}
