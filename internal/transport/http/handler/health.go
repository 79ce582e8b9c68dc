package handler

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/StepanK17/health-service/internal/domain/entity"
	domainErrors "github.com/StepanK17/health-service/internal/domain/errors"
	"github.com/StepanK17/health-service/internal/transport/http/dto"
)

const healthCheckFailed = "An error occurred in the health_check endpoint."

// HealthChecker проверяет состояние сервиса
type HealthChecker interface {
	Check(ctx context.Context) (entity.HealthStatus, error)
}

// HealthHandler обрабатывает health check
type HealthHandler struct {
	healthUseCase HealthChecker
	log           zerolog.Logger
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(healthUseCase HealthChecker, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		healthUseCase: healthUseCase,
		log:           log,
	}
}

// Check обрабатывает GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	defer recoverAs(w, h.log, domainErrors.NewHealthError, healthCheckFailed)

	status, err := h.healthUseCase.Check(r.Context())
	if err != nil {
		handleError(w, h.log, err, domainErrors.NewHealthError, healthCheckFailed)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToHealthResponse(status))
}
