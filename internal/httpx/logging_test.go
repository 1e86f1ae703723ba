package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	t.Run("logs method path and status", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		middleware := RequestLogger(zap.New(core))

		handler := middleware(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusTeapot)
		}))

		req := httptest.NewRequest(http.MethodGet, "/records/3", nil)
		req.Header.Set("X-Request-Id", "req-9")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusTeapot, recorder.Code)
		require.Equal(t, 1, logs.Len())

		entry := logs.All()[0]
		fields := entry.ContextMap()
		require.Equal(t, "request", entry.Message)
		require.Equal(t, "GET", fields["method"])
		require.Equal(t, "/records/3", fields["path"])
		require.Equal(t, int64(http.StatusTeapot), fields["status"])
		require.Equal(t, "req-9", fields["request_id"])
	})

	t.Run("defaults status to 200 when handler never writes the header", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		middleware := RequestLogger(zap.New(core))

		handler := middleware(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte("ok"))
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, int64(http.StatusOK), logs.All()[0].ContextMap()["status"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		middleware := RequestLogger(nil)
		handler := middleware(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
	})
}
