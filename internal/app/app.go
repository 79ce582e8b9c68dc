package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/StepanK17/health-service/internal/config"
	httpTransport "github.com/StepanK17/health-service/internal/transport/http"
	"github.com/StepanK17/health-service/internal/transport/http/handler"
	"github.com/StepanK17/health-service/internal/usecase"
)

// App связывает слои приложения и управляет HTTP сервером
type App struct {
	cfg *config.Config
	log zerolog.Logger
	srv *http.Server
}

// New собирает приложение по конфигурации
func New(cfg *config.Config, log zerolog.Logger, version string) *App {
	// Инициализируем use cases
	healthUseCase := usecase.NewHealthUseCase(log)

	// Инициализируем handlers
	healthHandler := handler.NewHealthHandler(healthUseCase, log)
	rootHandler := handler.NewRootHandler(cfg.DocsPath, log)
	docsHandler := handler.NewDocsHandler(cfg.ApplicationTitle, version, cfg.DocsPath, httpTransport.OpenAPIPath, log)

	// Создаем роутер
	router := httpTransport.NewRouter(httpTransport.RouterConfig{
		HealthHandler: healthHandler,
		RootHandler:   rootHandler,
		DocsHandler:   docsHandler,
		DocsPath:      cfg.DocsPath,
		Logger:        log,
	})

	return &App{
		cfg: cfg,
		log: log,
		srv: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handler возвращает HTTP обработчик приложения
func (a *App) Handler() http.Handler {
	return a.srv.Handler
}

// Run слушает адрес из конфигурации до отмены ctx или сигнала
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.srv.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln до отмены ctx или SIGINT/SIGTERM
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	Startup(a.cfg, a.log)

	// Запускаем сервер в отдельной горутине
	serverErr := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", ln.Addr().String()).Msg("Starting HTTP server")
		if err := a.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			Shutdown(a.cfg, a.log)
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		a.log.Info().Msg("Shutting down server...")
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		Shutdown(a.cfg, a.log)
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	Shutdown(a.cfg, a.log)
	return nil
}
