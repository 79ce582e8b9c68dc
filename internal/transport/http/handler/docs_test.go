package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocsHandler() *DocsHandler {
	return NewDocsHandler("Health <Service>", "1.2.3", "/docs", "/openapi.json", zerolog.Nop())
}

func TestDocsUI(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	rr := httptest.NewRecorder()

	newTestDocsHandler().UI(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Health &lt;Service&gt; - Docs")
	assert.Contains(t, rr.Body.String(), "openapi.json")
	assert.Contains(t, rr.Body.String(), "swagger-ui-bundle.js")
}

func TestDocsOpenAPI(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rr := httptest.NewRecorder()

	newTestDocsHandler().OpenAPI(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var doc struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&doc))

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "Health <Service>", doc.Info.Title)
	assert.Equal(t, "1.2.3", doc.Info.Version)
	assert.Contains(t, doc.Paths, "/health")
	assert.Contains(t, doc.Paths, "/")
	assert.Contains(t, doc.Paths["/health"], "get")
}
