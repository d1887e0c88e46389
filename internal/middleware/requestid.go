package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey используется как ключ для значений в контексте
type contextKey string

const (
	// RequestIDKey используется как ключ для хранения ID запроса в контексте
	RequestIDKey contextKey = "request_id"
	// RequestIDHeader - заголовок, в котором передается ID запроса
	RequestIDHeader = "X-Request-ID"
)

// GenerateRequestID генерирует уникальный ID запроса
func GenerateRequestID() string {
	return uuid.New().String()
}

// RequestID берет ID запроса из заголовка X-Request-ID или генерирует новый,
// кладет его в контекст и возвращает клиенту в том же заголовке.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = GenerateRequestID()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext извлекает ID запроса из контекста
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
