package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/InQaaaaGit/numtowords.git/internal/models"
	"go.uber.org/zap"
)

// RecoverMiddleware перехватывает панику обработчика, логирует ее
// и отвечает 500 с общим JSON-сообщением без деталей.
func RecoverMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Unhandled panic",
					zap.String("request_id", RequestIDFromContext(r.Context())),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: models.MessageSomethingWrong}); err != nil {
					logger.Error("Error writing panic response", zap.Error(err))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
