package usecase

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestPartialDeleteError(t *testing.T) {
	cause := errors.New("connection reset")

	t.Run("Nothing completed reads as a plain cascade failure", func(t *testing.T) {
		err := &PartialDeleteError{Failed: "pdfs", Err: cause}

		msg := err.Error()
		if !strings.Contains(msg, "cascade failed at pdfs") {
			t.Errorf("Error() = %q, want the failed step named", msg)
		}
		if strings.Contains(msg, "after deleting") {
			t.Errorf("Error() = %q, must not claim completed steps", msg)
		}
	})

	t.Run("Completed steps are listed", func(t *testing.T) {
		err := &PartialDeleteError{
			Completed: []string{"pdfs", "notes"},
			Failed:    "subtopics",
			Err:       cause,
		}

		msg := err.Error()
		if !strings.Contains(msg, "cascade failed at subtopics") {
			t.Errorf("Error() = %q, want the failed step named", msg)
		}
		if !strings.Contains(msg, "after deleting pdfs, notes") {
			t.Errorf("Error() = %q, want the completed steps listed", msg)
		}
	})

	t.Run("Unwraps to the cause", func(t *testing.T) {
		err := &PartialDeleteError{Failed: "notes", Err: cause}

		if !errors.Is(err, cause) {
			t.Error("errors.Is() does not reach the wrapped cause")
		}
	})

	t.Run("Recoverable through a wrapping chain", func(t *testing.T) {
		wrapped := fmt.Errorf("delete subject: %w",
			&PartialDeleteError{Completed: []string{"pdfs"}, Failed: "notes", Err: cause})

		var partial *PartialDeleteError
		if !errors.As(wrapped, &partial) {
			t.Fatal("errors.As() does not recover the partial delete error")
		}
		if partial.Failed != "notes" || len(partial.Completed) != 1 {
			t.Errorf("Recovered %+v, want Failed=notes Completed=[pdfs]", partial)
		}
	})
}
