package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-jobform/pkg/application"
	"github.com/goliatone/go-jobform/pkg/wizard"
)

// ErrBadIntent is returned for unknown intents or malformed jump targets.
var ErrBadIntent = errors.New("server: bad intent")

const (
	intentNext     = "next"
	intentPrevious = "previous"
	intentJump     = "jump"
	intentSubmit   = "submit"
)

// apply runs one navigation intent. The caller holds s.mu.
func (s *Server) apply(ctx context.Context, intent string, target *int) (application.Submission, error) {
	switch strings.ToLower(strings.TrimSpace(intent)) {
	case intentNext:
		return application.Submission{}, s.wizard.Next()
	case intentPrevious:
		return application.Submission{}, s.wizard.Previous()
	case intentJump:
		if target == nil {
			return application.Submission{}, fmt.Errorf("%w: jump requires a target", ErrBadIntent)
		}
		return application.Submission{}, s.wizard.JumpTo(wizard.Step(*target))
	case intentSubmit:
		return s.wizard.Submit(ctx)
	default:
		return application.Submission{}, fmt.Errorf("%w: %q", ErrBadIntent, intent)
	}
}

func parseTarget(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: target %q", ErrBadIntent, raw)
	}
	return &n, nil
}

func statusFor(err error) int {
	var verr *wizard.ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, wizard.ErrSubmitted), errors.Is(err, wizard.ErrNotOnReviewStep):
		return http.StatusConflict
	case errors.Is(err, ErrBadIntent),
		errors.Is(err, wizard.ErrStepOutOfRange),
		errors.Is(err, application.ErrUnknownField),
		errors.Is(err, application.ErrInvalidExperience):
		return http.StatusBadRequest
	default:
		// Sink failures.
		return http.StatusBadGateway
	}
}
