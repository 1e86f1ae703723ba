package httpx

import (
	"encoding/json"
	"net/http"
	"time"
)

// Response es el sobre estándar que devuelve la API.
// Un formato consistente simplifica los clientes (frontend/tests).
type Response struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
	Meta  *Meta      `json:"meta,omitempty"`
}

// Meta agrega trazabilidad a cada respuesta.
type Meta struct {
	RequestID string `json:"request_id,omitempty"`
	TimeUTC   string `json:"time_utc,omitempty"`
}

// ErrorBody describe un error de forma estructurada.
// Nunca exponer detalles internos (SQL, stacktrace) acá.
type ErrorBody struct {
	Code    string `json:"code,omitempty"`    // ej: "invalid_input", "not_found"
	Message string `json:"message,omitempty"` // mensaje para humanos
}

// JSON escribe una respuesta JSON con los headers correctos.
func JSON(writer http.ResponseWriter, status int, response Response) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)

	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(true)

	if err := encoder.Encode(response); err != nil {
		// Último recurso: no se pudo serializar el JSON.
		http.Error(writer, `{"error":{"code":"internal","message":"internal server error"}}`, http.StatusInternalServerError)
	}
}

// OK devuelve una respuesta exitosa con data.
func OK(writer http.ResponseWriter, request *http.Request, status int, data any) {
	JSON(writer, status, Response{
		Data: data,
		Meta: metaFor(request),
	})
}

// Fail devuelve un error estructurado.
func Fail(writer http.ResponseWriter, request *http.Request, status int, code, message string) {
	JSON(writer, status, Response{
		Error: &ErrorBody{
			Code:    code,
			Message: message,
		},
		Meta: metaFor(request),
	})
}

func metaFor(request *http.Request) *Meta {
	return &Meta{
		RequestID: RequestIDFrom(request),
		TimeUTC:   time.Now().UTC().Format(time.RFC3339),
	}
}

// Chi propaga el request id en el header "X-Request-Id".
// Lo leemos del request para incluirlo en cada respuesta.
func RequestIDFrom(request *http.Request) string {
	if request == nil {
		return ""
	}
	return request.Header.Get("X-Request-Id")
}
