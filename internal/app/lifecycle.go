package app

import (
	"github.com/rs/zerolog"

	"github.com/StepanK17/health-service/internal/config"
)

// Startup логирует запуск приложения, вызывается до приема запросов.
// Логгер к этому моменту уже создан через logger.New в cmd/app.
func Startup(cfg *config.Config, log zerolog.Logger) {
	log.Info().Msgf("Starting %s...", cfg.ApplicationTitle)
	if cfg.IsDev() {
		log.Warn().Msg("Running in development mode, this is not recommended for production!")
	}

	log.Info().Msgf("%s is ready to serve requests.", cfg.ApplicationTitle)
}

// Shutdown логирует остановку приложения, вызывается после остановки сервера
func Shutdown(cfg *config.Config, log zerolog.Logger) {
	log.Info().Msg("Shutting down application...")

	log.Info().Msgf("%s has been shut down successfully.", cfg.ApplicationTitle)
}
