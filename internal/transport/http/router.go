package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/StepanK17/health-service/internal/transport/http/handler"
	customMiddleware "github.com/StepanK17/health-service/internal/transport/http/middleware"
)

// OpenAPIPath путь к описанию API
const OpenAPIPath = "/openapi.json"

// RouterConfig содержит конфигурацию для роутера
type RouterConfig struct {
	HealthHandler *handler.HealthHandler
	RootHandler   *handler.RootHandler
	DocsHandler   *handler.DocsHandler
	DocsPath      string
	Logger        zerolog.Logger
}

// NewRouter создает и настраивает роутер
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.RequestLogger(cfg.Logger))
	r.Use(customMiddleware.Recoverer(cfg.Logger))

	// Health check
	r.Get("/health", cfg.HealthHandler.Check)
	r.Get("/", cfg.RootHandler.Redirect)

	// Docs
	r.Get(cfg.DocsPath, cfg.DocsHandler.UI)
	r.Get(OpenAPIPath, cfg.DocsHandler.OpenAPI)

	return r
}
