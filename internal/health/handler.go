package health

import (
	"context"
	"net/http"
	"time"

	"github.com/Lelo88/inventory-editor-golang/internal/httpx"
)

// Pinger es lo único que health necesita de la DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler encapsula los endpoints de health.
type Handler struct {
	pinger Pinger
}

// New crea un handler de health con su chequeo de DB.
func New(pinger Pinger) *Handler {
	return &Handler{pinger: pinger}
}

// Health indica si el proceso está vivo. NO chequea base de datos; eso es /ready.
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	httpx.OK(writer, request, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready verifica que la DB responda antes de declarar el servicio listo.
func (handler *Handler) Ready(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), 2*time.Second)
	defer cancel()

	if err := handler.pinger.Ping(ctx); err != nil {
		httpx.Fail(writer, request, http.StatusServiceUnavailable, "not_ready", "database not reachable")
		return
	}

	httpx.OK(writer, request, http.StatusOK, map[string]any{
		"status": "ready",
	})
}
