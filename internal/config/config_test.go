package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Health Service", cfg.ApplicationTitle)
	assert.Equal(t, "PROD", cfg.Environment)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "/docs", cfg.DocsPath)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APPLICATION_TITLE", "Probe")
	t.Setenv("ENVIRONMENT", "DEV")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Probe", cfg.ApplicationTitle)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"log level", "LOG_LEVEL", "verbose"},
		{"log format", "LOG_FORMAT", "xml"},
		{"docs path", "DOCS_PATH", "docs"},
		{"docs path with query", "DOCS_PATH", "/docs?x=1"},
		{"reserved docs path", "DOCS_PATH", "/"},
		{"unclosed route param", "DOCS_PATH", "/docs/{"},
		{"route param", "DOCS_PATH", "/docs/{id}"},
		{"inner wildcard", "DOCS_PATH", "/docs/*/x"},
		{"trailing wildcard", "DOCS_PATH", "/docs/*"},
		{"shutdown timeout", "SHUTDOWN_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
