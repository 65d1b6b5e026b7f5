package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type contextKey string

// RequestIDKey ключ ID запроса в контексте
const RequestIDKey contextKey = "request_id"

// RequestIDHeader заголовок, в котором клиент может передать свой ID запроса
const RequestIDHeader = "X-Request-ID"

// RequestID возвращает ID запроса из контекста
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// RequestLogging логирует начало и завершение каждого запроса
func RequestLogging(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)
			r = r.WithContext(context.WithValue(r.Context(), RequestIDKey, requestID))

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			log.Info("HTTP %s %s: request_id=%s, status=%d, duration_ms=%d",
				r.Method, r.URL.Path, requestID, rec.status, time.Since(start).Milliseconds())
		})
	}
}
