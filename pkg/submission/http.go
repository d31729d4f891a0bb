package submission

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-jobform/pkg/application"
	"github.com/goliatone/go-jobform/pkg/openapi"
)

const maxErrorBody = 4 << 10

// StatusError reports a non-2xx response from the intake endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("submission: endpoint responded %d", e.StatusCode)
	}
	return fmt.Sprintf("submission: endpoint responded %d: %s", e.StatusCode, e.Body)
}

// HTTPOption configures an HTTPSink.
type HTTPOption func(*HTTPSink)

// WithHTTPClient overrides the client used to post submissions.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPSink) {
		if client != nil {
			s.client = client
		}
	}
}

// WithContract overrides the OpenAPI contract used for the target path and
// payload validation.
func WithContract(contract *openapi.Contract) HTTPOption {
	return func(s *HTTPSink) {
		if contract != nil {
			s.contract = contract
		}
	}
}

// WithFormat selects the request body encoding.
func WithFormat(format Format) HTTPOption {
	return func(s *HTTPSink) {
		if format != "" {
			s.format = format
		}
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) HTTPOption {
	return func(s *HTTPSink) {
		if strings.TrimSpace(key) != "" {
			s.headers.Set(key, value)
		}
	}
}

// WithTimeout bounds each delivery. Zero keeps the caller's deadline only.
func WithTimeout(timeout time.Duration) HTTPOption {
	return func(s *HTTPSink) {
		if timeout >= 0 {
			s.timeout = timeout
		}
	}
}

// HTTPSink posts submissions to the intake endpoint.
type HTTPSink struct {
	endpoint string
	client   *http.Client
	contract *openapi.Contract
	format   Format
	headers  http.Header
	timeout  time.Duration
}

// NewHTTPSink builds a sink targeting baseURL joined with the contract's
// submit path.
func NewHTTPSink(baseURL string, options ...HTTPOption) (*HTTPSink, error) {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		return nil, errors.New("submission: endpoint is required")
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("submission: invalid endpoint %q", baseURL)
	}

	sink := &HTTPSink{
		client:  http.DefaultClient,
		format:  FormatJSON,
		headers: make(http.Header),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(sink)
	}
	if sink.contract == nil {
		sink.contract, err = openapi.DefaultContract()
		if err != nil {
			return nil, err
		}
	}

	endpoint, err := url.JoinPath(base, sink.contract.Operation().Path)
	if err != nil {
		return nil, fmt.Errorf("submission: build endpoint: %w", err)
	}
	sink.endpoint = endpoint
	return sink, nil
}

// Endpoint reports the resolved target URL.
func (s *HTTPSink) Endpoint() string {
	return s.endpoint
}

// Deliver implements Sink.
func (s *HTTPSink) Deliver(ctx context.Context, submission application.Submission) error {
	if ctx == nil {
		return errors.New("submission: context is required")
	}
	if err := s.contract.ValidatePayload(submission.Payload()); err != nil {
		return err
	}

	body, err := Encode(s.format, submission)
	if err != nil {
		return err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, s.contract.Operation().Method, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("submission: build request: %w", err)
	}
	for key, values := range s.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Content-Type", s.format.ContentType())
	if submission.ID != "" {
		req.Header.Set("Idempotency-Key", submission.ID)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("submission: post application: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
