package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	domainErrors "github.com/StepanK17/health-service/internal/domain/errors"
)

const redirectRootFailed = "An error occurred in the redirect_root endpoint."

// RootHandler перенаправляет с корня на документацию
type RootHandler struct {
	docsPath string
	log      zerolog.Logger
}

// NewRootHandler создает новый handler для корня
func NewRootHandler(docsPath string, log zerolog.Logger) *RootHandler {
	return &RootHandler{
		docsPath: docsPath,
		log:      log,
	}
}

// Redirect обрабатывает GET /
func (h *RootHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	defer recoverAs(w, h.log, domainErrors.NewRedirectError, redirectRootFailed)

	target, err := docsTarget(h.docsPath)
	if err != nil {
		handleError(w, h.log, err, domainErrors.NewRedirectError, redirectRootFailed)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// docsTarget проверяет, что путь документации локальный и абсолютный
func docsTarget(path string) (string, error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse docs path: %w", err)
	}
	if u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "", fmt.Errorf("docs path %q is not a local absolute path", path)
	}
	return u.String(), nil
}
