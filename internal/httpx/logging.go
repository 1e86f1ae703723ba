package httpx

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// statusWriter captura el status code para poder loguearlo.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (writer *statusWriter) WriteHeader(status int) {
	writer.status = status
	writer.ResponseWriter.WriteHeader(status)
}

// RequestLogger loguea cada request con zap: método, path, status y duración.
// Reemplaza al logger plano de chi para mantener logs estructurados en JSON.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			start := time.Now()
			wrapped := &statusWriter{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(wrapped, request)

			logger.Info("request",
				zap.String("method", request.Method),
				zap.String("path", request.URL.Path),
				zap.Int("status", wrapped.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", RequestIDFrom(request)),
			)
		})
	}
}
