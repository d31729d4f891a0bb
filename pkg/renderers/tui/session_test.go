package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-jobform/pkg/application"
	"github.com/goliatone/go-jobform/pkg/submission"
	"github.com/goliatone/go-jobform/pkg/wizard"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	textAreas    []string
	infoMessages []string
	inputErr     error
	inputPos     int
	selectPos    int
	confirmPos   int
	textPos      int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) output() string {
	return strings.Join(s.infoMessages, "\n")
}

func newWizard(sink submission.Sink) *wizard.Wizard {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return wizard.New(
		wizard.WithSink(sink),
		wizard.WithIDGenerator(func() string { return "app-1" }),
		wizard.WithClock(func() time.Time { return fixed }),
	)
}

func TestSessionHappyPath(t *testing.T) {
	var got []application.Submission
	sink := submission.SinkFunc(func(_ context.Context, sub application.Submission) error {
		got = append(got, sub)
		return nil
	})
	driver := &stubDriver{
		// fullName, email, phone, jobTitle, company
		inputs: []string{"Ada Lovelace", "ada@example.com", "", "Engineer", "Acme"},
		// address, skills
		textAreas: []string{"12 Analytical Way", "Go, SQL"},
		// next, experience bucket, next, submit
		selectIdx: []int{0, 2, 0, 0},
		confirm:   []bool{true},
	}

	session, err := NewSession(newWizard(sink), WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	sub, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := application.Fields{
		FullName:        "Ada Lovelace",
		Email:           "ada@example.com",
		Address:         "12 Analytical Way",
		JobTitle:        "Engineer",
		Company:         "Acme",
		YearsExperience: application.ExperienceThreeToFive,
		Skills:          "Go, SQL",
	}
	if diff := cmp.Diff(want, sub.Fields); diff != "" {
		t.Fatalf("submitted fields mismatch (-want +got):\n%s", diff)
	}
	if len(got) != 1 || got[0].ID != "app-1" || !got[0].AgreeTerms {
		t.Fatalf("unexpected deliveries %+v", got)
	}

	out := driver.output()
	for _, fragment := range []string{
		"[1. Personal Info]  2. Experience  3. Review & Submit",
		"1. Personal Info  2. Experience  [3. Review & Submit]",
		"  Phone: Not Provided",
		"  Years of Experience: 3-5",
		"Application Submitted Successfully!",
		"Thank you, Ada Lovelace. Your application has been received.",
		"fullName=Ada Lovelace",
		"id=app-1",
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, out)
		}
	}
}

func TestSessionShowsBlurAndGateErrors(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Al", "bad", "", "Ada Lovelace", "ada@example.com", "", "", ""},
		textAreas: []string{"", "12 Analytical Way", ""},
		// next (rejected), next, experience bucket
		selectIdx: []int{0, 0, 1},
	}

	session, err := NewSession(newWizard(nil), WithPromptDriver(driver), WithTheme(Theme{ErrorPrefix: "ERR "}))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	_, err = session.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "no select scripted") {
		t.Fatalf("expected script exhaustion, got %v", err)
	}

	out := driver.output()
	for _, fragment := range []string{
		"ERR " + application.MessageFullName,
		"ERR " + application.MessageEmail,
		"ERR " + application.MessageAddress,
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, out)
		}
	}
	if strings.Contains(out, "ERR "+application.MessagePhone) {
		t.Fatalf("empty phone must not be reported\n%s", out)
	}
}

func TestSessionSinkFailureKeepsFormEditable(t *testing.T) {
	calls := 0
	sink := submission.SinkFunc(func(context.Context, application.Submission) error {
		calls++
		if calls == 1 {
			return errors.New("endpoint down")
		}
		return nil
	})
	w := newWizard(sink)
	for name, value := range map[application.FieldName]string{
		application.FieldFullName: "Ada Lovelace",
		application.FieldEmail:    "ada@example.com",
		application.FieldAddress:  "12 Analytical Way",
	} {
		if err := w.SetField(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	if err := w.JumpTo(wizard.StepReview); err != nil {
		t.Fatalf("jump: %v", err)
	}

	driver := &stubDriver{
		confirm:   []bool{true, true},
		selectIdx: []int{0, 0},
	}
	session, err := NewSession(w, WithPromptDriver(driver), WithReceiptFormat(""))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected two delivery attempts, got %d", calls)
	}
	out := driver.output()
	if !strings.Contains(out, "Submission failed: wizard: deliver submission: endpoint down") {
		t.Fatalf("expected failure message\n%s", out)
	}
	if strings.Contains(out, "fullName=") {
		t.Fatalf("receipt should be disabled\n%s", out)
	}
}

func TestSessionJumpBackwards(t *testing.T) {
	w := newWizard(nil)
	for name, value := range map[application.FieldName]string{
		application.FieldFullName: "Ada Lovelace",
		application.FieldEmail:    "ada@example.com",
		application.FieldAddress:  "12 Analytical Way",
	} {
		if err := w.SetField(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	if err := w.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}

	driver := &stubDriver{
		inputs:    []string{"", ""},
		textAreas: []string{""},
		// bucket, nav "Jump to step", header 0
		selectIdx: []int{0, 2, 0},
	}
	session, err := NewSession(w, WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	_, _ = session.Run(context.Background())
	if w.Step() != wizard.StepPersonal {
		t.Fatalf("expected jump to personal step, got %s", w.Step())
	}
}

func TestSessionAbort(t *testing.T) {
	driver := &stubDriver{inputErr: ErrAborted}
	session, err := NewSession(newWizard(nil), WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := session.Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSessionCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	session, err := NewSession(newWizard(nil), WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := session.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewSessionRequiresWizard(t *testing.T) {
	if _, err := NewSession(nil); !errors.Is(err, ErrNilWizard) {
		t.Fatalf("expected ErrNilWizard, got %v", err)
	}
}

func TestSurveyDriverInfo(t *testing.T) {
	var buf bytes.Buffer
	driver := NewSurveyDriver(&buf)
	if err := driver.Info(context.Background(), "hello"); err != nil {
		t.Fatalf("info: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := driver.Input(ctx, InputConfig{Message: "Name"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
