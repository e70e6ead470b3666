package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adboard-api/pkg/log"
)

func TestLoggingMiddleware(t *testing.T) {
	t.Run("propaga o ID de correlação e o status do handler", func(t *testing.T) {
		var seenCorrelationID string

		handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenCorrelationID = log.GetCorrelationID(r.Context())
			w.WriteHeader(http.StatusAccepted)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/projects", nil))

		assert.NotEmpty(t, seenCorrelationID)
		assert.Equal(t, http.StatusAccepted, recorder.Code)
	})

	t.Run("mantém 200 quando o handler não escreve status", func(t *testing.T) {
		handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	t.Run("converte panic em 500 no envelope padrão", func(t *testing.T) {
		handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("estado inesperado")
		}))

		recorder := httptest.NewRecorder()
		require.NotPanics(t, func() {
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/projects", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		assert.Contains(t, recorder.Body.String(), "SRV_001")
	})

	t.Run("não interfere em requisições sem panic", func(t *testing.T) {
		handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/v1/projects/abc", nil))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}
