package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-jobform/pkg/application"
)

var (
	// ErrSubmitted is returned by every intent once the application has been
	// submitted.
	ErrSubmitted = errors.New("wizard: application already submitted")
	// ErrStepOutOfRange is returned when jumping to a step that does not exist.
	ErrStepOutOfRange = errors.New("wizard: step out of range")
	// ErrNotOnReviewStep is returned when Submit is invoked before the review
	// step is active.
	ErrNotOnReviewStep = errors.New("wizard: submit is only available on the review step")
)

// ValidationError reports the fields that blocked a navigation or submit
// attempt. The same messages are recorded in the form's error map.
type ValidationError struct {
	Step   Step
	Errors application.FieldErrors
}

func (e *ValidationError) Error() string {
	if e == nil || e.Errors.Len() == 0 {
		return "wizard: validation failed"
	}
	names := e.Errors.Names()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, string(name))
	}
	return fmt.Sprintf("wizard: validation failed on %s: %s", e.Step, strings.Join(parts, ", "))
}
