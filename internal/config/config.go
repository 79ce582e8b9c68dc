package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// EnvironmentDev значение ENVIRONMENT для режима разработки
const EnvironmentDev = "DEV"

type Config struct {
	ApplicationTitle string `envconfig:"APPLICATION_TITLE" default:"Health Service"`
	Environment      string `envconfig:"ENVIRONMENT" default:"PROD"`

	HTTPPort        string        `envconfig:"HTTP_PORT" default:"8080"`
	DocsPath        string        `envconfig:"DOCS_PATH" default:"/docs"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}

	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: expected json or console", c.LogFormat)
	}

	if !strings.HasPrefix(c.DocsPath, "/") || strings.HasPrefix(c.DocsPath, "//") || strings.ContainsAny(c.DocsPath, "?#") {
		return fmt.Errorf("invalid DOCS_PATH %q: must be an absolute path", c.DocsPath)
	}
	// путь регистрируется в chi как шаблон маршрута
	if strings.ContainsAny(c.DocsPath, "{}*") {
		return fmt.Errorf("invalid DOCS_PATH %q: route pattern characters are not allowed", c.DocsPath)
	}
	switch c.DocsPath {
	case "/", "/health", "/openapi.json":
		return fmt.Errorf("invalid DOCS_PATH %q: path is reserved", c.DocsPath)
	}

	return nil
}

// IsDev возвращает true в режиме разработки
func (c *Config) IsDev() bool {
	return c.Environment == EnvironmentDev
}

// Addr возвращает адрес для HTTP сервера
func (c *Config) Addr() string {
	return ":" + c.HTTPPort
}
