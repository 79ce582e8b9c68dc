package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/StepanK17/health-service/internal/domain/entity"
	domainErrors "github.com/StepanK17/health-service/internal/domain/errors"
)

const docsFailed = "An error occurred in the docs endpoint."

var docsTemplate = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}} - Docs</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({url: {{.SpecURL}}, dom_id: "#swagger-ui"});
  </script>
</body>
</html>
`))

// DocsHandler отдает документацию API
type DocsHandler struct {
	title    string
	version  string
	docsPath string
	specURL  string
	log      zerolog.Logger
}

// NewDocsHandler создает новый handler для документации
func NewDocsHandler(title, version, docsPath, specURL string, log zerolog.Logger) *DocsHandler {
	return &DocsHandler{
		title:    title,
		version:  version,
		docsPath: docsPath,
		specURL:  specURL,
		log:      log,
	}
}

// UI обрабатывает GET /docs
func (h *DocsHandler) UI(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := docsTemplate.Execute(&buf, struct {
		Title   string
		SpecURL string
	}{
		Title:   h.title,
		SpecURL: h.specURL,
	})
	if err != nil {
		handleError(w, h.log, err, domainErrors.NewInternalError, docsFailed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// OpenAPI обрабатывает GET /openapi.json
func (h *DocsHandler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, openAPIDocument(h.title, h.version, h.docsPath))
}

// openAPIDocument описывает маршруты сервиса в формате OpenAPI 3
func openAPIDocument(title, version, docsPath string) map[string]interface{} {
	errorResponse := map[string]interface{}{
		"description": "Internal Server Error",
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{
				"schema": map[string]interface{}{"$ref": "#/components/schemas/ErrorResponse"},
			},
		},
	}

	return map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":   title,
			"version": version,
		},
		"paths": map[string]interface{}{
			"/health": map[string]interface{}{
				"get": map[string]interface{}{
					"tags":        []string{"Health"},
					"summary":     "Health check",
					"operationId": "check",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "Service is healthy",
							"content": map[string]interface{}{
								"application/json": map[string]interface{}{
									"schema": map[string]interface{}{"$ref": "#/components/schemas/HealthResponse"},
								},
							},
						},
						"500": errorResponse,
					},
				},
			},
			"/": map[string]interface{}{
				"get": map[string]interface{}{
					"tags":        []string{"Health"},
					"summary":     "Redirect to documentation",
					"operationId": "redirectRoot",
					"responses": map[string]interface{}{
						"302": map[string]interface{}{
							"description": "Redirect to " + docsPath,
						},
						"500": errorResponse,
					},
				},
			},
		},
		"components": map[string]interface{}{
			"schemas": map[string]interface{}{
				"HealthResponse": map[string]interface{}{
					"type":     "object",
					"required": []string{"status"},
					"properties": map[string]interface{}{
						"status": map[string]interface{}{
							"type": "string",
							"enum": []string{string(entity.HealthOK)},
						},
					},
				},
				"ErrorResponse": map[string]interface{}{
					"type":     "object",
					"required": []string{"message", "data"},
					"properties": map[string]interface{}{
						"message": map[string]interface{}{"type": "string"},
						"data": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"errors": map[string]interface{}{
									"type":  "array",
									"items": map[string]interface{}{"type": "string"},
								},
							},
						},
					},
				},
			},
		},
	}
}
