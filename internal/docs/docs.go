package docs

import (
	"embed"
	"net/http"
)

//go:embed openapi.yaml swagger.html
var assets embed.FS

// OpenAPIHandler sirve el documento OpenAPI embebido.
func OpenAPIHandler() http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		body, err := assets.ReadFile("openapi.yaml")
		if err != nil {
			http.Error(writer, "openapi not found", http.StatusInternalServerError)
			return
		}
		writer.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write(body)
	}
}

// SwaggerUIHandler sirve la página de Swagger UI.
func SwaggerUIHandler() http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		body, err := assets.ReadFile("swagger.html")
		if err != nil {
			http.Error(writer, "swagger ui not found", http.StatusInternalServerError)
			return
		}
		writer.Header().Set("Content-Type", "text/html; charset=utf-8")
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write(body)
	}
}
