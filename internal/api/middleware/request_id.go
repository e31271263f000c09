package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// headerRequestID заголовок с идентификатором запроса
const headerRequestID = "X-Request-ID"

type requestIDKey struct{}

// RequestID извлекает идентификатор запроса из контекста
func RequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// WithRequestID middleware, присваивающий каждому запросу идентификатор
// и пишущий access-лог. Идентификатор клиента сохраняется, если пришёл
// в заголовке, иначе генерируется новый.
func WithRequestID(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(headerRequestID, id)
			ctx := context.WithValue(r.Context(), requestIDKey{}, id)

			start := time.Now()
			next.ServeHTTP(w, r.WithContext(ctx))

			log.Info("%s %s request_id=%s duration=%s",
				r.Method, r.URL.Path, id, time.Since(start))
		})
	}
}
