package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func tracingTestRouter() *gin.Engine {
	router := gin.New()
	router.GET("/", RequestTracingMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})
	return router
}

func TestRequestTracingMiddleware(t *testing.T) {
	router := tracingTestRouter()

	t.Run("Generates an id when none is sent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		header := w.Header().Get("X-Request-ID")
		if _, err := uuid.Parse(header); err != nil {
			t.Errorf("X-Request-ID %q is not a UUID: %v", header, err)
		}
		if w.Body.String() != header {
			t.Errorf("Context id %q differs from header %q", w.Body.String(), header)
		}
	})

	t.Run("Reuses a valid inbound id", func(t *testing.T) {
		inbound := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", inbound)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != inbound {
			t.Errorf("X-Request-ID = %q, want the inbound %q", got, inbound)
		}
	})

	t.Run("Replaces a malformed inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "not-a-uuid'; DROP TABLE logs")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		header := w.Header().Get("X-Request-ID")
		if _, err := uuid.Parse(header); err != nil {
			t.Errorf("Malformed inbound id was echoed: %q", header)
		}
	})
}
