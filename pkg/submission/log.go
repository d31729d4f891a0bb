package submission

import (
	"context"
	"io"
	"log"

	"github.com/goliatone/go-jobform/pkg/application"
)

// LogSink writes submissions to a logger.
type LogSink struct {
	logger *log.Logger
	format Format
}

// NewLogSink returns a sink logging to logger using format. A nil logger
// discards output.
func NewLogSink(logger *log.Logger, format Format) *LogSink {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if format == "" {
		format = FormatJSON
	}
	return &LogSink{logger: logger, format: format}
}

// Deliver implements Sink.
func (s *LogSink) Deliver(ctx context.Context, submission application.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(s.format, submission)
	if err != nil {
		return err
	}
	s.logger.Printf("Form Data Submitted: %s", data)
	s.logger.Printf("Agreed to terms: %t", submission.AgreeTerms)
	return nil
}
