package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	domainErrors "github.com/StepanK17/health-service/internal/domain/errors"
	"github.com/StepanK17/health-service/internal/logger"
	"github.com/StepanK17/health-service/internal/transport/http/dto"
)

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(data)
}

// RespondError отправляет структурированную ошибку в формате API
func RespondError(w http.ResponseWriter, err *domainErrors.AppError) {
	respondJSON(w, err.StatusCode, dto.ToErrorResponse(err))
}

// handleError отправляет структурированные ошибки как есть,
// остальные логирует со стеком и оборачивает через fallback
func handleError(w http.ResponseWriter, log zerolog.Logger, err error, fallback func(error) *domainErrors.AppError, msg string) {
	if appErr, ok := domainErrors.AsAppError(err); ok {
		RespondError(w, appErr)
		return
	}

	logger.WithStack(log.Error().Err(err)).Msg(msg)
	RespondError(w, fallback(err))
}

// recoverAs перехватывает панику обработчика, вызывается через defer
func recoverAs(w http.ResponseWriter, log zerolog.Logger, fallback func(error) *domainErrors.AppError, msg string) {
	rec := recover()
	if rec == nil {
		return
	}
	if rec == http.ErrAbortHandler {
		panic(rec)
	}

	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", rec)
	}
	handleError(w, log, err, fallback, msg)
}
