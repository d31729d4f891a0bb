package wizard

import (
	"log"
	"time"

	"github.com/goliatone/go-jobform/pkg/submission"
)

// Option configures a Wizard.
type Option func(*config)

type config struct {
	sink   submission.Sink
	logger *log.Logger
	newID  func() string
	now    func() time.Time
}

// WithSink sets the collaborator that receives the validated submission.
func WithSink(sink submission.Sink) Option {
	return func(cfg *config) {
		if sink != nil {
			cfg.sink = sink
		}
	}
}

// WithLogger routes navigation and submission traces to logger.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithIDGenerator overrides how submission identifiers are produced.
func WithIDGenerator(fn func() string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.newID = fn
		}
	}
}

// WithClock overrides the submission timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.now = fn
		}
	}
}
