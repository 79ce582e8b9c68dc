package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/StepanK17/health-service/internal/domain/entity"
	domainErrors "github.com/StepanK17/health-service/internal/domain/errors"
	"github.com/StepanK17/health-service/internal/logger"
)

// HealthUseCase реализует проверку состояния сервиса
type HealthUseCase struct {
	log   zerolog.Logger
	check func(ctx context.Context) (entity.HealthStatus, error)
}

// NewHealthUseCase создает новый usecase для health check
func NewHealthUseCase(log zerolog.Logger) *HealthUseCase {
	return &HealthUseCase{
		log:   log,
		check: checkOK,
	}
}

// Check возвращает текущее состояние сервиса
func (uc *HealthUseCase) Check(ctx context.Context) (status entity.HealthStatus, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			status = ""
			err = uc.fail(fmt.Errorf("panic: %v", rec))
		}
	}()

	status, err = uc.check(ctx)
	if err != nil {
		return "", uc.fail(err)
	}
	return status, nil
}

func checkOK(_ context.Context) (entity.HealthStatus, error) {
	return entity.HealthOK, nil
}

// fail пропускает структурированные ошибки, остальные логирует и оборачивает
func (uc *HealthUseCase) fail(err error) error {
	if appErr, ok := domainErrors.AsAppError(err); ok {
		return appErr
	}
	logger.WithStack(uc.log.Error().Err(err)).Msg("An error occurred in the health use case.")
	return domainErrors.NewUseCaseError(err)
}
