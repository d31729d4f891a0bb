package wizard

import (
	"context"
	"log"

	"github.com/goliatone/go-jobform/pkg/application"
)

// Wizard composes the step Shell with the Form that gates it.
type Wizard struct {
	shell  *Shell
	form   *Form
	logger *log.Logger
}

// New returns a wizard on the first step with an empty form.
func New(options ...Option) *Wizard {
	cfg := newConfig(options)
	form := newForm(cfg)
	return &Wizard{
		shell:  NewShell(form),
		form:   form,
		logger: cfg.logger,
	}
}

// Step returns the active step.
func (w *Wizard) Step() Step {
	return w.shell.Step()
}

// Fields returns a copy of the captured values.
func (w *Wizard) Fields() application.Fields {
	return w.form.Fields()
}

// Errors returns a copy of the current error map.
func (w *Wizard) Errors() application.FieldErrors {
	return w.form.Errors()
}

// AgreeTerms reports the terms checkbox state.
func (w *Wizard) AgreeTerms() bool {
	return w.form.AgreeTerms()
}

// Submitted reports whether the application reached the terminal state.
func (w *Wizard) Submitted() bool {
	return w.form.Submitted()
}

// CanRetreat reports whether the Previous control is enabled.
func (w *Wizard) CanRetreat() bool {
	return !w.form.Submitted() && w.shell.CanRetreat()
}

// SetField replaces a field value, clearing its error.
func (w *Wizard) SetField(name application.FieldName, value string) error {
	return w.form.SetField(name, value)
}

// SetTerms records the terms checkbox.
func (w *Wizard) SetTerms(agreed bool) error {
	return w.form.SetTerms(agreed)
}

// Blur revalidates a personal field after it loses focus.
func (w *Wizard) Blur(name application.FieldName) error {
	return w.form.Blur(name)
}

// Next advances one step when the active step passes its gate. A refusal
// returns a *ValidationError carrying the blocking fields; the step does not
// change. On the last step an approved Next stays put.
func (w *Wizard) Next() error {
	if w.form.Submitted() {
		return ErrSubmitted
	}
	from := w.shell.Step()
	if !w.shell.Advance() {
		w.logger.Printf("wizard: advance from %s rejected", from)
		return w.gateError(from)
	}
	w.logger.Printf("wizard: advance %s -> %s", from, w.shell.Step())
	return nil
}

// Previous moves back one step. On the first step it does nothing.
func (w *Wizard) Previous() error {
	if w.form.Submitted() {
		return ErrSubmitted
	}
	from := w.shell.Step()
	w.shell.Retreat()
	w.logger.Printf("wizard: retreat %s -> %s", from, w.shell.Step())
	return nil
}

// JumpTo moves directly to target. Jumping backwards or to the active step is
// always allowed; jumping forwards requires the active step to pass its gate.
func (w *Wizard) JumpTo(target Step) error {
	if w.form.Submitted() {
		return ErrSubmitted
	}
	from := w.shell.Step()
	moved, err := w.shell.JumpTo(target)
	if err != nil {
		return err
	}
	if !moved {
		w.logger.Printf("wizard: jump %s -> %s rejected", from, target)
		return w.gateError(from)
	}
	w.logger.Printf("wizard: jump %s -> %s", from, target)
	return nil
}

// Submit validates the whole form and hands the snapshot to the sink. It is
// only available on the review step.
func (w *Wizard) Submit(ctx context.Context) (application.Submission, error) {
	if w.form.Submitted() {
		return application.Submission{}, ErrSubmitted
	}
	if w.shell.Step() != StepReview {
		return application.Submission{}, ErrNotOnReviewStep
	}
	return w.form.Submit(ctx)
}

// View returns the variant describing what should be displayed.
func (w *Wizard) View() View {
	return buildView(w.shell.Step(), w.form, w.shell)
}

// State is a serialisable snapshot of the wizard.
type State struct {
	Step       Step               `json:"step"`
	Title      string             `json:"title"`
	Fields     application.Fields `json:"fields"`
	Errors     map[string]string  `json:"errors"`
	AgreeTerms bool               `json:"agreeTerms"`
	Submitted  bool               `json:"submitted"`
}

// State returns the current snapshot.
func (w *Wizard) State() State {
	return State{
		Step:       w.shell.Step(),
		Title:      w.shell.Step().Title(),
		Fields:     w.form.Fields(),
		Errors:     w.form.Errors().Strings(),
		AgreeTerms: w.form.AgreeTerms(),
		Submitted:  w.form.Submitted(),
	}
}

func (w *Wizard) gateError(step Step) error {
	var names []application.FieldName
	if step == StepPersonal {
		names = personalFields
	}
	return &ValidationError{Step: step, Errors: w.form.errorsFor(names)}
}
