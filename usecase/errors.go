package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the addressed subject, topic or subtopic does not exist
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorized means the row exists but belongs to a different user
	ErrNotAuthorized = errors.New("not authorized")

	// ErrValidation wraps any rejected input
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateUser means the requested username is already taken
	ErrDuplicateUser = errors.New("username already exists")

	// ErrUpstream marks a failure of an external collaborator, like object
	// storage. Distinct from internal errors so handlers can answer 502
	// instead of 500.
	ErrUpstream = errors.New("upstream failure")
)

// PartialDeleteError reports a cascade that stopped partway through. The
// steps already completed are gone for good; the failed step and everything
// after it are still in place, so a retry of the same delete finishes the
// job without recreating orphans.
type PartialDeleteError struct {
	Completed []string
	Failed    string
	Err       error
}

func (e *PartialDeleteError) Error() string {
	if len(e.Completed) == 0 {
		return fmt.Sprintf("cascade failed at %s: %v", e.Failed, e.Err)
	}
	return fmt.Sprintf("cascade failed at %s after deleting %s: %v",
		e.Failed, strings.Join(e.Completed, ", "), e.Err)
}

func (e *PartialDeleteError) Unwrap() error {
	return e.Err
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
