package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://app.example.com", "http://localhost:4321/"}, next)

	t.Run("allowed origin gets CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/wedding/slug", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("trailing slash in config is normalized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/wedding/slug", nil)
		req.Header.Set("Origin", "http://localhost:4321")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "http://localhost:4321", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/wedding/slug", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight answers 204 with methods and headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "http://test/wedding/slug", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, corsAllowMethods, rr.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, corsAllowHeaders, rr.Header().Get("Access-Control-Allow-Headers"))
	})
}
