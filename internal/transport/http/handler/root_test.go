package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectRoot(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	NewRootHandler("/docs", zerolog.Nop()).Redirect(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/docs", rr.Header().Get("Location"))
}

func TestRedirectRootInvalidDocsPath(t *testing.T) {
	paths := []string{"https://example.com/docs", "//example.com/docs", "docs", "%zz"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			NewRootHandler(path, zerolog.Nop()).Redirect(rr, req)

			require.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Empty(t, rr.Header().Get("Location"))

			body := decodeError(t, rr)
			assert.Equal(t, "Redirection error", body.Message)
			assert.Equal(t, []string{"An error occurred while redirecting to the documentation page."}, body.Data.Errors)
		})
	}
}
