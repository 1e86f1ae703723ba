package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	req.Header.Set("X-Request-Id", "req-123")
	recorder := httptest.NewRecorder()

	OK(recorder, req, http.StatusOK, map[string]any{"hello": "world"})

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var response Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Nil(t, response.Error)
	require.NotNil(t, response.Meta)
	require.Equal(t, "req-123", response.Meta.RequestID)
	require.NotEmpty(t, response.Meta.TimeUTC)

	data, ok := response.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "world", data["hello"])
}

func TestFail(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	recorder := httptest.NewRecorder()

	Fail(recorder, req, http.StatusNotFound, "not_found", "resource not found")

	require.Equal(t, http.StatusNotFound, recorder.Code)

	var response Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Nil(t, response.Data)
	require.NotNil(t, response.Error)
	require.Equal(t, "not_found", response.Error.Code)
	require.Equal(t, "resource not found", response.Error.Message)
}

func TestRequestIDFrom(t *testing.T) {
	t.Run("nil request", func(t *testing.T) {
		require.Equal(t, "", RequestIDFrom(nil))
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.Equal(t, "", RequestIDFrom(req))
	})

	t.Run("present header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "abc")
		require.Equal(t, "abc", RequestIDFrom(req))
	})
}
