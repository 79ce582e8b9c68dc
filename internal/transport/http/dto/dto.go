package dto

import (
	"github.com/StepanK17/health-service/internal/domain/entity"
	domainErrors "github.com/StepanK17/health-service/internal/domain/errors"
)

// HealthResponse ответ health check
type HealthResponse struct {
	Status entity.HealthStatus `json:"status"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Message string      `json:"message"`
	Data    ErrorDetail `json:"data"`
}

// ErrorDetail содержит список деталей ошибки
type ErrorDetail struct {
	Errors []string `json:"errors"`
}

// Маппинг функции

// ToHealthResponse преобразует статус в DTO
func ToHealthResponse(status entity.HealthStatus) HealthResponse {
	return HealthResponse{
		Status: status,
	}
}

// ToErrorResponse преобразует структурированную ошибку в DTO
func ToErrorResponse(err *domainErrors.AppError) ErrorResponse {
	errs := make([]string, len(err.Errors))
	copy(errs, err.Errors)

	return ErrorResponse{
		Message: err.Message,
		Data: ErrorDetail{
			Errors: errs,
		},
	}
}
