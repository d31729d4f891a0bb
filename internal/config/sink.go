package config

import (
	"context"
	"fmt"
	"log"

	"github.com/goliatone/go-jobform/pkg/openapi"
	"github.com/goliatone/go-jobform/pkg/submission"
)

// BuildSink constructs the submission sink described by the section.
func (s SinkConfig) BuildSink(logger *log.Logger) (submission.Sink, error) {
	return s.BuildSinkContext(context.Background(), logger)
}

// BuildSinkContext is BuildSink with a context bounding the contract fetch.
func (s SinkConfig) BuildSinkContext(ctx context.Context, logger *log.Logger) (submission.Sink, error) {
	format, err := submission.ParseFormat(s.Format)
	if err != nil {
		return nil, err
	}

	switch s.Kind {
	case SinkNone:
		return submission.Discard, nil
	case SinkHTTP:
		opts := []submission.HTTPOption{submission.WithFormat(format)}
		if s.Timeout > 0 {
			opts = append(opts, submission.WithTimeout(s.Timeout))
		}
		if s.Contract != "" {
			src, err := openapi.ParseSource(s.Contract)
			if err != nil {
				return nil, err
			}
			contract, err := openapi.LoadContractFrom(ctx, src, openapi.WithRequestTimeout(s.Timeout))
			if err != nil {
				return nil, err
			}
			opts = append(opts, submission.WithContract(contract))
		}
		sink, err := submission.NewHTTPSink(s.Endpoint, opts...)
		if err != nil {
			return nil, err
		}
		if logger == nil {
			return sink, nil
		}
		// Logged only once the endpoint accepts the post.
		return submission.MultiSink{sink, submission.NewLogSink(logger, format)}, nil
	case SinkLog, "":
		if logger == nil {
			logger = log.Default()
		}
		return submission.NewLogSink(logger, format), nil
	default:
		return nil, fmt.Errorf("config: unknown sink kind %q", s.Kind)
	}
}
