package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-jobform/pkg/application"
	"github.com/goliatone/go-jobform/pkg/submission"
	"github.com/goliatone/go-jobform/pkg/wizard"
)

type intent int

const (
	intentNext intent = iota
	intentPrevious
	intentJump
	intentSubmit
)

var intentLabels = map[intent]string{
	intentNext:     "Next",
	intentPrevious: "Previous",
	intentJump:     "Jump to step",
	intentSubmit:   "Submit Application",
}

// Session drives a wizard through a terminal until the application is
// submitted or the user aborts.
type Session struct {
	wizard  *wizard.Wizard
	driver  PromptDriver
	out     io.Writer
	theme   Theme
	receipt submission.Format
	logger  *log.Logger
}

// NewSession binds w to a prompt driver. The survey driver is used unless
// WithPromptDriver supplies another one.
func NewSession(w *wizard.Wizard, options ...Option) (*Session, error) {
	if w == nil {
		return nil, ErrNilWizard
	}
	s := &Session{
		wizard:  w,
		out:     os.Stdout,
		theme:   DefaultTheme,
		receipt: submission.FormatPretty,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	return s, nil
}

// Run prompts for the active step, then for a navigation intent, until the
// wizard reaches its terminal state. It returns the delivered submission.
func (s *Session) Run(ctx context.Context) (application.Submission, error) {
	var delivered application.Submission
	for !s.wizard.Submitted() {
		if err := ctx.Err(); err != nil {
			return application.Submission{}, err
		}

		view := s.wizard.View()
		if err := s.printHeaders(ctx, view); err != nil {
			return application.Submission{}, err
		}

		var frame wizard.Frame
		var err error
		switch v := view.(type) {
		case wizard.PersonalView:
			frame = v.Frame
			err = s.promptPersonal(ctx, v)
		case wizard.ExperienceView:
			frame = v.Frame
			err = s.promptExperience(ctx, v)
		case wizard.ReviewView:
			frame = v.Frame
			err = s.promptReview(ctx, v)
		default:
			return application.Submission{}, fmt.Errorf("tui: unexpected view %q", view.Kind())
		}
		if err != nil {
			return application.Submission{}, err
		}

		sub, err := s.navigate(ctx, frame)
		if err != nil {
			return application.Submission{}, err
		}
		if s.wizard.Submitted() {
			delivered = sub
		}
	}

	if err := s.printSubmitted(ctx, delivered); err != nil {
		return delivered, err
	}
	return delivered, nil
}

func (s *Session) printHeaders(ctx context.Context, view wizard.View) error {
	var frame wizard.Frame
	switch v := view.(type) {
	case wizard.PersonalView:
		frame = v.Frame
	case wizard.ExperienceView:
		frame = v.Frame
	case wizard.ReviewView:
		frame = v.Frame
	default:
		return nil
	}

	parts := make([]string, 0, len(frame.Headers))
	for _, header := range frame.Headers {
		if header.Active {
			parts = append(parts, "["+header.Label+"]")
			continue
		}
		parts = append(parts, header.Label)
	}
	return s.info(ctx, strings.Join(parts, "  "))
}

func (s *Session) promptPersonal(ctx context.Context, v wizard.PersonalView) error {
	current := map[application.FieldName]string{
		application.FieldFullName: v.FullName,
		application.FieldEmail:    v.Email,
		application.FieldPhone:    v.Phone,
		application.FieldAddress:  v.Address,
	}
	for _, spec := range application.SpecsForStep(int(wizard.StepPersonal)) {
		value, err := s.promptText(ctx, spec, current[spec.Name])
		if err != nil {
			return err
		}
		if err := s.wizard.SetField(spec.Name, value); err != nil {
			return err
		}
		if err := s.wizard.Blur(spec.Name); err != nil {
			return err
		}
		if msg := s.wizard.Errors().Message(spec.Name); msg != "" {
			if err := s.warn(ctx, msg); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Session) promptExperience(ctx context.Context, v wizard.ExperienceView) error {
	current := map[application.FieldName]string{
		application.FieldJobTitle: v.JobTitle,
		application.FieldCompany:  v.Company,
		application.FieldSkills:   v.Skills,
	}
	for _, spec := range application.SpecsForStep(int(wizard.StepExperience)) {
		var value string
		var err error
		if spec.Kind == application.InputSelect {
			value, err = s.promptExperienceBucket(ctx, spec, v)
		} else {
			value, err = s.promptText(ctx, spec, current[spec.Name])
		}
		if err != nil {
			return err
		}
		if err := s.wizard.SetField(spec.Name, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) promptExperienceBucket(ctx context.Context, spec application.FieldSpec, v wizard.ExperienceView) (string, error) {
	labels := make([]string, 0, len(v.Options))
	selected := 0
	for i, option := range v.Options {
		labels = append(labels, option.Label())
		if option == v.YearsExperience {
			selected = i
		}
	}
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      spec.Label,
		Options:      labels,
		DefaultIndex: selected,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(v.Options) {
		return string(v.YearsExperience), nil
	}
	return string(v.Options[idx]), nil
}

func (s *Session) promptText(ctx context.Context, spec application.FieldSpec, current string) (string, error) {
	message := spec.Label
	if spec.Required {
		message += " *"
	}
	if spec.Kind == application.InputTextArea {
		return s.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: current,
			Help:    spec.Placeholder,
		})
	}
	return s.driver.Input(ctx, InputConfig{
		Message: message,
		Default: current,
		Help:    spec.Placeholder,
	})
}

func (s *Session) promptReview(ctx context.Context, v wizard.ReviewView) error {
	for _, section := range v.Sections {
		if err := s.info(ctx, section.Title); err != nil {
			return err
		}
		for _, row := range section.Rows {
			if err := s.info(ctx, fmt.Sprintf("  %s: %s", row.Label, row.Value)); err != nil {
				return err
			}
		}
	}

	spec, _ := application.Spec(application.FieldAgreeTerms)
	agreed, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: spec.Label,
		Default: v.AgreeTerms,
	})
	if err != nil {
		return err
	}
	return s.wizard.SetTerms(agreed)
}

func (s *Session) navigate(ctx context.Context, frame wizard.Frame) (application.Submission, error) {
	choices := []intent{}
	if frame.IsLast {
		choices = append(choices, intentSubmit)
	} else {
		choices = append(choices, intentNext)
	}
	if frame.CanRetreat {
		choices = append(choices, intentPrevious)
	}
	choices = append(choices, intentJump)

	labels := make([]string, 0, len(choices))
	for _, choice := range choices {
		labels = append(labels, intentLabels[choice])
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: "What next?", Options: labels})
	if err != nil {
		return application.Submission{}, err
	}
	if idx < 0 || idx >= len(choices) {
		return application.Submission{}, nil
	}

	var sub application.Submission
	switch choices[idx] {
	case intentNext:
		err = s.wizard.Next()
	case intentPrevious:
		err = s.wizard.Previous()
	case intentJump:
		err = s.jump(ctx, frame)
	case intentSubmit:
		sub, err = s.wizard.Submit(ctx)
	}
	return sub, s.report(ctx, err)
}

func (s *Session) jump(ctx context.Context, frame wizard.Frame) error {
	labels := make([]string, 0, len(frame.Headers))
	for _, header := range frame.Headers {
		labels = append(labels, header.Label)
	}
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      "Go to step",
		Options:      labels,
		DefaultIndex: int(frame.Step),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(frame.Headers) {
		return nil
	}
	return s.wizard.JumpTo(frame.Headers[idx].Step)
}

// report prints recoverable intent failures and passes the rest through.
func (s *Session) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrAborted) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var verr *wizard.ValidationError
	if errors.As(err, &verr) {
		for _, name := range verr.Errors.Names() {
			if printErr := s.warn(ctx, verr.Errors.Message(name)); printErr != nil {
				return printErr
			}
		}
		return nil
	}
	if errors.Is(err, wizard.ErrSubmitted) {
		return err
	}

	s.logger.Printf("tui: intent failed: %v", err)
	return s.warn(ctx, "Submission failed: "+err.Error())
}

func (s *Session) printSubmitted(ctx context.Context, sub application.Submission) error {
	view, ok := s.wizard.View().(wizard.SubmittedView)
	if !ok {
		return nil
	}
	for _, line := range []string{view.Title(), view.Greeting(), view.ContactLine()} {
		if err := s.info(ctx, line); err != nil {
			return err
		}
	}
	if s.receipt == "" {
		return nil
	}
	data, err := submission.Encode(s.receipt, sub)
	if err != nil {
		return err
	}
	return s.info(ctx, strings.TrimRight(string(data), "\n"))
}

func (s *Session) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.InfoPrefix+msg)
}

func (s *Session) warn(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.ErrorPrefix+msg)
}
