package submission

import (
	"context"

	"github.com/goliatone/go-jobform/pkg/application"
)

// Sink receives a validated submission.
type Sink interface {
	Deliver(ctx context.Context, submission application.Submission) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, submission application.Submission) error

// Deliver calls fn.
func (fn SinkFunc) Deliver(ctx context.Context, submission application.Submission) error {
	return fn(ctx, submission)
}

// Discard accepts every submission and drops it.
var Discard Sink = SinkFunc(func(context.Context, application.Submission) error { return nil })

// MultiSink delivers to each sink in order, stopping at the first error.
type MultiSink []Sink

// Deliver implements Sink.
func (m MultiSink) Deliver(ctx context.Context, submission application.Submission) error {
	for _, sink := range m {
		if sink == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sink.Deliver(ctx, submission); err != nil {
			return err
		}
	}
	return nil
}
