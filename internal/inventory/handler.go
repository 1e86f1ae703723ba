package inventory

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/Lelo88/inventory-editor-golang/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler HTTP para el flujo de edición.
// Solo traduce HTTP <-> dominio (sesiones y records).
type Handler struct {
	manager *Manager
}

// NewHandler crea un handler de inventario.
func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

type openSessionRequest struct {
	RecordID int64 `json:"record_id"`
}

type draftPayload struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
	Draft     Draft  `json:"draft"`
	Valid     bool   `json:"valid"`
}

type saveResponse struct {
	Saved  bool    `json:"saved"`
	Valid  bool    `json:"valid"`
	Record *Record `json:"record,omitempty"`
}

type recordResponse struct {
	Record
	FormattedPrice string `json:"formatted_price"`
}

// OpenSession maneja POST /sessions.
// Sin record_id abre una sesión para un record nuevo; con record_id hidrata
// desde el record persistido. La validez arranca en false en ambos casos.
func (handler *Handler) OpenSession(writer http.ResponseWriter, request *http.Request) {
	var body openSessionRequest
	// Body vacío es válido: sesión para un record nuevo.
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	var session *Session
	if body.RecordID == 0 {
		session = handler.manager.Open()
	} else {
		var err error
		session, err = handler.manager.OpenForRecord(request.Context(), body.RecordID)
		if err != nil {
			switch {
			case errors.Is(err, ErrorNotFound):
				httpx.Fail(writer, request, http.StatusNotFound, "not_found", "record not found")
			default:
				// No filtramos detalles internos.
				httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
			}
			return
		}
	}

	draft, valid := session.Snapshot()
	httpx.OK(writer, request, http.StatusCreated, sessionResponse{
		SessionID: session.ID(),
		State:     session.State(),
		Draft:     draft,
		Valid:     valid,
	})
}

// UpdateDraft maneja PUT /sessions/{sid}/draft.
// Reemplaza el draft completo; el id se preserva desde la sesión para que
// el cliente no pueda pisarlo.
func (handler *Handler) UpdateDraft(writer http.ResponseWriter, request *http.Request) {
	session, ok := handler.sessionFrom(writer, request)
	if !ok {
		return
	}

	var payload draftPayload
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	current, _ := session.Snapshot()
	draft, valid := session.UpdateDraft(Draft{
		ID:       current.ID,
		Name:     payload.Name,
		Price:    payload.Price,
		Quantity: payload.Quantity,
	})

	httpx.OK(writer, request, http.StatusOK, sessionResponse{
		SessionID: session.ID(),
		State:     session.State(),
		Draft:     draft,
		Valid:     valid,
	})
}

// Save maneja POST /sessions/{sid}/save.
// Guardar con draft inválido no es un error: responde saved=false y el flag
// valid ya le dice al cliente por qué no se persistió nada.
func (handler *Handler) Save(writer http.ResponseWriter, request *http.Request) {
	session, ok := handler.sessionFrom(writer, request)
	if !ok {
		return
	}

	record, saved, err := session.Save(request.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, request, http.StatusNotFound, "not_found", "record not found")
		default:
			httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
		}
		return
	}

	response := saveResponse{Saved: saved, Valid: saved}
	if saved {
		response.Record = &record
	}

	httpx.OK(writer, request, http.StatusOK, response)
}

// CloseSession maneja DELETE /sessions/{sid}: descarta la sesión y su draft.
func (handler *Handler) CloseSession(writer http.ResponseWriter, request *http.Request) {
	sessionID := chi.URLParam(request, "sid")
	if err := handler.manager.Close(sessionID); err != nil {
		httpx.Fail(writer, request, http.StatusNotFound, "session_not_found", "editing session not found")
		return
	}

	writer.WriteHeader(http.StatusNoContent)
}

// GetRecord maneja GET /records/{id}: devuelve el record persistido junto
// con el precio formateado listo para mostrar.
func (handler *Handler) GetRecord(writer http.ResponseWriter, request *http.Request) {
	id, err := parseRecordID(request)
	if err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	record, err := handler.manager.Record(request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, request, http.StatusNotFound, "not_found", "record not found")
		default:
			httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
		}
		return
	}

	httpx.OK(writer, request, http.StatusOK, recordResponse{
		Record:         record,
		FormattedPrice: record.FormattedPrice(),
	})
}

// DeleteRecord maneja DELETE /records/{id}.
func (handler *Handler) DeleteRecord(writer http.ResponseWriter, request *http.Request) {
	id, err := parseRecordID(request)
	if err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	if err := handler.manager.DeleteRecord(request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, request, http.StatusNotFound, "not_found", "record not found")
		default:
			httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
		}
		return
	}

	// 204 No Content: respuesta vacía.
	writer.WriteHeader(http.StatusNoContent)
}

// sessionFrom resuelve la sesión del path o responde el error HTTP.
func (handler *Handler) sessionFrom(writer http.ResponseWriter, request *http.Request) (*Session, bool) {
	session, err := handler.manager.Get(chi.URLParam(request, "sid"))
	if err != nil {
		httpx.Fail(writer, request, http.StatusNotFound, "session_not_found", "editing session not found")
		return nil, false
	}
	return session, true
}

// parseRecordID valida que el id del path sea un entero positivo, porque en
// DB es bigserial; esto evita round-trips innecesarios.
func parseRecordID(request *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(request, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrorInvalidInput
	}
	return id, nil
}
