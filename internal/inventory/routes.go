package inventory

import "github.com/go-chi/chi/v5"

// RegisterRoutes registra las rutas del flujo de edición en el router.
// Mantener esto separado hace que main.go no crezca sin control.
func RegisterRoutes(route chi.Router, handler *Handler) {
	route.Route("/sessions", func(route chi.Router) {
		route.Post("/", handler.OpenSession)
		route.Put("/{sid}/draft", handler.UpdateDraft)
		route.Post("/{sid}/save", handler.Save)
		route.Delete("/{sid}", handler.CloseSession)
	})

	route.Route("/records", func(route chi.Router) {
		route.Get("/{id}", handler.GetRecord)
		route.Delete("/{id}", handler.DeleteRecord)
	})
}
