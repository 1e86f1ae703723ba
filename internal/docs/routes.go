package docs

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas de documentación (Swagger UI + OpenAPI YAML).
func RegisterRoutes(router chi.Router) {
	// Soporta /docs (sin slash) redirigiendo a /docs/
	router.Get("/docs", func(writer http.ResponseWriter, request *http.Request) {
		http.Redirect(writer, request, "/docs/", http.StatusMovedPermanently)
	})

	router.Route("/docs", func(router chi.Router) {
		router.Get("/", SwaggerUIHandler())

		// Documento OpenAPI embebido (swagger.html lo consume por URL).
		router.Get("/openapi.yaml", OpenAPIHandler())
	})
}
