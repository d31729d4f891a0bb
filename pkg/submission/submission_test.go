package submission_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-jobform/pkg/application"
	"github.com/goliatone/go-jobform/pkg/openapi"
	"github.com/goliatone/go-jobform/pkg/submission"
)

func sampleSubmission() application.Submission {
	fields := application.NewFields()
	fields.FullName = "Ada Lovelace"
	fields.Email = "ada@example.com"
	fields.Address = "12 Analytical Way"
	fields.YearsExperience = application.ExperienceThreeToFive
	fields.Skills = "math, engines"
	return application.Submission{
		ID:          "2f4d0c1e-0000-4000-8000-000000000001",
		SubmittedAt: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		Fields:      fields,
		AgreeTerms:  true,
	}
}

func TestEncode_JSON(t *testing.T) {
	data, err := submission.Encode(submission.FormatJSON, sampleSubmission())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]any{
		"id":              "2f4d0c1e-0000-4000-8000-000000000001",
		"submittedAt":     "2026-03-01T10:30:00Z",
		"fullName":        "Ada Lovelace",
		"email":           "ada@example.com",
		"phone":           "",
		"address":         "12 Analytical Way",
		"jobTitle":        "",
		"company":         "",
		"yearsExperience": "3-5",
		"skills":          "math, engines",
		"agreeTerms":      true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_FormAndPretty(t *testing.T) {
	data, err := submission.Encode(submission.FormatForm, sampleSubmission())
	if err != nil {
		t.Fatalf("encode form: %v", err)
	}
	values, err := url.ParseQuery(string(data))
	if err != nil {
		t.Fatalf("parse form: %v", err)
	}
	if values.Get("fullName") != "Ada Lovelace" || values.Get("agreeTerms") != "true" {
		t.Fatalf("unexpected form payload: %v", values)
	}

	pretty, err := submission.Encode(submission.FormatPretty, sampleSubmission())
	if err != nil {
		t.Fatalf("encode pretty: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(pretty)), "\n")
	if lines[0] != "address=12 Analytical Way" {
		t.Fatalf("expected sorted output, first line %q", lines[0])
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]submission.Format{
		"":       submission.FormatJSON,
		"JSON":   submission.FormatJSON,
		"form":   submission.FormatForm,
		"pretty": submission.FormatPretty,
	}
	for raw, want := range cases {
		got, err := submission.ParseFormat(raw)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := submission.ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestLogSink_Deliver(t *testing.T) {
	var buf bytes.Buffer
	sink := submission.NewLogSink(log.New(&buf, "", 0), submission.FormatJSON)
	if err := sink.Deliver(context.Background(), sampleSubmission()); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Form Data Submitted:") || !strings.Contains(out, `"fullName":"Ada Lovelace"`) {
		t.Fatalf("unexpected log output %q", out)
	}
	if !strings.Contains(out, "Agreed to terms: true") {
		t.Fatalf("missing terms line in %q", out)
	}
}

func TestMultiSink_StopsAtFirstError(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	sink := submission.MultiSink{
		submission.SinkFunc(func(context.Context, application.Submission) error {
			calls = append(calls, "first")
			return nil
		}),
		nil,
		submission.SinkFunc(func(context.Context, application.Submission) error {
			calls = append(calls, "second")
			return boom
		}),
		submission.SinkFunc(func(context.Context, application.Submission) error {
			calls = append(calls, "third")
			return nil
		}),
	}
	if err := sink.Deliver(context.Background(), sampleSubmission()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if diff := cmp.Diff([]string{"first", "second"}, calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestHTTPSink_PostsValidatedPayload(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotType   string
		gotKey    string
		gotBody   map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotKey = r.Header.Get("Idempotency-Key")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	sink, err := submission.NewHTTPSink(server.URL, submission.WithHTTPClient(server.Client()), submission.WithHeader("X-Source", "test"))
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	if sink.Endpoint() != server.URL+"/applications" {
		t.Fatalf("unexpected endpoint %q", sink.Endpoint())
	}

	sub := sampleSubmission()
	if err := sink.Deliver(context.Background(), sub); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/applications" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
	if gotType != "application/json" || gotKey != sub.ID {
		t.Fatalf("unexpected headers content-type=%q key=%q", gotType, gotKey)
	}
	if gotBody["email"] != "ada@example.com" {
		t.Fatalf("unexpected body %v", gotBody)
	}
}

func TestHTTPSink_RejectsPayloadBeforePosting(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	sink, err := submission.NewHTTPSink(server.URL, submission.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	sub := sampleSubmission()
	sub.AgreeTerms = false
	if err := sink.Deliver(context.Background(), sub); !errors.Is(err, openapi.ErrPayloadRejected) {
		t.Fatalf("expected ErrPayloadRejected, got %v", err)
	}
	if called {
		t.Fatalf("endpoint must not be called for rejected payloads")
	}
}

func TestHTTPSink_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "duplicate application", http.StatusConflict)
	}))
	defer server.Close()

	sink, err := submission.NewHTTPSink(server.URL, submission.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	err = sink.Deliver(context.Background(), sampleSubmission())
	var statusErr *submission.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusConflict || statusErr.Body != "duplicate application" {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
}

func TestNewHTTPSink_InvalidEndpoint(t *testing.T) {
	for _, raw := range []string{"", "not a url", "/relative"} {
		if _, err := submission.NewHTTPSink(raw); err == nil {
			t.Fatalf("expected error for endpoint %q", raw)
		}
	}
}
