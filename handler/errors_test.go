package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"main/usecase"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, err)
	return w
}

func TestRespondError(t *testing.T) {
	t.Run("Partial delete answers 502 with the completed steps", func(t *testing.T) {
		w := respond(t, &usecase.PartialDeleteError{
			Completed: []string{"pdfs", "notes"},
			Failed:    "subtopics",
			Err:       errors.New("connection reset"),
		})

		if w.Code != http.StatusBadGateway {
			t.Fatalf("Status = %d, want 502", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "completed_steps") {
			t.Errorf("Body %q does not report the completed steps", body)
		}
		if !strings.Contains(body, "pdfs") || !strings.Contains(body, "notes") {
			t.Errorf("Body %q does not name the completed steps", body)
		}
		if !strings.Contains(body, `"deleted":false`) {
			t.Errorf("Body %q does not mark the delete incomplete", body)
		}
	})

	t.Run("Partial delete with nothing completed omits the steps", func(t *testing.T) {
		w := respond(t, &usecase.PartialDeleteError{
			Failed: "pdfs",
			Err:    errors.New("connection reset"),
		})

		if w.Code != http.StatusBadGateway {
			t.Fatalf("Status = %d, want 502", w.Code)
		}
		body := w.Body.String()
		if strings.Contains(body, "completed_steps") {
			t.Errorf("Body %q claims completed steps when nothing was deleted", body)
		}
		if !strings.Contains(body, `"deleted":false`) {
			t.Errorf("Body %q does not mark the delete incomplete", body)
		}
	})

	t.Run("Partial delete survives a wrapping chain", func(t *testing.T) {
		wrapped := fmt.Errorf("delete topic: %w", &usecase.PartialDeleteError{
			Completed: []string{"pdfs"},
			Failed:    "notes",
			Err:       errors.New("connection reset"),
		})

		w := respond(t, wrapped)
		if w.Code != http.StatusBadGateway {
			t.Errorf("Status = %d, want 502", w.Code)
		}
	})

	t.Run("Upstream failure answers 502 without delete shape", func(t *testing.T) {
		w := respond(t, fmt.Errorf("%w: bucket write: timeout", usecase.ErrUpstream))

		if w.Code != http.StatusBadGateway {
			t.Fatalf("Status = %d, want 502", w.Code)
		}
		if strings.Contains(w.Body.String(), "deleted") {
			t.Errorf("Body %q carries a delete shape for a non-delete failure", w.Body.String())
		}
	})

	t.Run("Remaining kinds map to their status codes", func(t *testing.T) {
		tests := []struct {
			err  error
			want int
		}{
			{fmt.Errorf("%w: name cannot be empty", usecase.ErrValidation), http.StatusBadRequest},
			{usecase.ErrNotFound, http.StatusNotFound},
			{usecase.ErrNotAuthorized, http.StatusForbidden},
			{usecase.ErrDuplicateUser, http.StatusConflict},
			{errors.New("something unexpected"), http.StatusInternalServerError},
		}

		for _, tt := range tests {
			if w := respond(t, tt.err); w.Code != tt.want {
				t.Errorf("respondError(%v) status = %d, want %d", tt.err, w.Code, tt.want)
			}
		}
	})
}
