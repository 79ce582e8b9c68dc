package middleware

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	domainErrors "github.com/StepanK17/health-service/internal/domain/errors"
	"github.com/StepanK17/health-service/internal/logger"
	"github.com/StepanK17/health-service/internal/transport/http/handler"
)

// Recoverer перехватывает панику и отвечает структурированной ошибкой
func Recoverer(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// http.ErrAbortHandler прерывает ответ намеренно
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}

				logger.WithStack(log.Error().Err(err)).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("recovered from panic")

				handler.RespondError(w, domainErrors.NewInternalError(err))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
