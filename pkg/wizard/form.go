package wizard

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-jobform/pkg/application"
	"github.com/goliatone/go-jobform/pkg/submission"
)

// personalFields are gated when leaving the first step and again on submit.
// Phone is optional; ValidateField accepts an empty value.
var personalFields = []application.FieldName{
	application.FieldFullName,
	application.FieldEmail,
	application.FieldAddress,
	application.FieldPhone,
}

// Form holds the captured values and their validation state.
type Form struct {
	fields     application.Fields
	errors     application.FieldErrors
	agreeTerms bool
	submitted  bool

	sink   submission.Sink
	logger *log.Logger
	newID  func() string
	now    func() time.Time
}

// NewForm returns an empty form. Only the sink, logger, ID and clock options
// apply to a Form.
func NewForm(options ...Option) *Form {
	return newForm(newConfig(options))
}

func newForm(cfg config) *Form {
	return &Form{
		fields: application.NewFields(),
		errors: make(application.FieldErrors),
		sink:   cfg.sink,
		logger: cfg.logger,
		newID:  cfg.newID,
		now:    cfg.now,
	}
}

func newConfig(options []Option) config {
	cfg := config{
		sink:   submission.Discard,
		logger: log.New(io.Discard, "", 0),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Fields returns a copy of the captured values.
func (f *Form) Fields() application.Fields {
	return f.fields
}

// Errors returns a copy of the current error map.
func (f *Form) Errors() application.FieldErrors {
	return f.errors.Clone()
}

// AgreeTerms reports the terms checkbox state.
func (f *Form) AgreeTerms() bool {
	return f.agreeTerms
}

// Submitted reports whether the form reached its terminal state.
func (f *Form) Submitted() bool {
	return f.submitted
}

// SetField replaces the value of name and clears any error recorded for it.
// agreeTerms is accepted too and routed through SetTerms.
func (f *Form) SetField(name application.FieldName, value string) error {
	if f.submitted {
		return ErrSubmitted
	}
	if name == application.FieldAgreeTerms {
		return f.SetTerms(application.ParseTerms(value))
	}
	if err := f.fields.Set(name, value); err != nil {
		return err
	}
	f.errors.Clear(name)
	return nil
}

// SetTerms records the terms checkbox. Checking the box clears its error;
// unchecking leaves the error state alone until the next submit attempt.
func (f *Form) SetTerms(agreed bool) error {
	if f.submitted {
		return ErrSubmitted
	}
	f.agreeTerms = agreed
	if agreed {
		f.errors.Clear(application.FieldAgreeTerms)
	}
	return nil
}

// Blur recomputes the error of name when it is one of the personal fields.
// Other known fields are not validated on blur.
func (f *Form) Blur(name application.FieldName) error {
	if f.submitted {
		return ErrSubmitted
	}
	spec, ok := application.Spec(name)
	if !ok {
		return fmt.Errorf("%w: %q", application.ErrUnknownField, name)
	}
	if !spec.ValidateOnBlur {
		return nil
	}
	value, err := f.fields.Get(name)
	if err != nil {
		return err
	}
	f.errors.Set(name, application.ValidateField(name, value))
	return nil
}

// ValidateStep is the step gate. It validates the fields step requires,
// merges the errors it finds into the error map, and reports whether the
// step may be left in the forward direction.
func (f *Form) ValidateStep(step Step) bool {
	switch step {
	case StepPersonal:
		found := f.validate(personalFields)
		f.errors.Merge(found)
		return found.Len() == 0
	default:
		return true
	}
}

// ValidateSubmission validates every required field plus the terms flag and
// merges the errors it finds.
func (f *Form) ValidateSubmission() bool {
	found := f.validate(personalFields)
	found.Set(application.FieldAgreeTerms, application.ValidateTerms(f.agreeTerms))
	f.errors.Merge(found)
	return found.Len() == 0
}

func (f *Form) validate(names []application.FieldName) application.FieldErrors {
	found := make(application.FieldErrors)
	for _, name := range names {
		value, err := f.fields.Get(name)
		if err != nil {
			continue
		}
		found.Set(name, application.ValidateField(name, value))
	}
	return found
}

// Snapshot returns the current values in submission form, without an ID or
// timestamp.
func (f *Form) Snapshot() application.Submission {
	return application.Submission{
		Fields:     f.fields,
		AgreeTerms: f.agreeTerms,
	}
}

// Submit runs the submission validator. On success the snapshot is handed to
// the sink and the form becomes terminal. Validation failures return a
// *ValidationError; sink failures are wrapped and leave the form editable.
func (f *Form) Submit(ctx context.Context) (application.Submission, error) {
	if f.submitted {
		return application.Submission{}, ErrSubmitted
	}
	if !f.ValidateSubmission() {
		f.logger.Printf("wizard: form has validation errors: %v", f.errors.Names())
		return application.Submission{}, &ValidationError{Step: StepReview, Errors: f.errors.Clone()}
	}

	snapshot := f.Snapshot()
	snapshot.ID = f.newID()
	snapshot.SubmittedAt = f.now().UTC()

	if err := f.sink.Deliver(ctx, snapshot); err != nil {
		f.logger.Printf("wizard: deliver submission %s: %v", snapshot.ID, err)
		return application.Submission{}, fmt.Errorf("wizard: deliver submission: %w", err)
	}

	f.submitted = true
	f.logger.Printf("wizard: submission %s accepted", snapshot.ID)
	return snapshot, nil
}

func (f *Form) errorsFor(names []application.FieldName) application.FieldErrors {
	out := make(application.FieldErrors)
	for _, name := range names {
		if msg, ok := f.errors.Get(name); ok {
			out[name] = msg
		}
	}
	return out
}
