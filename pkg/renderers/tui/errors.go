package tui

import "errors"

var (
	// ErrAborted is returned when the user interrupts a prompt with Ctrl+C.
	ErrAborted = errors.New("tui: application aborted")
	// ErrNilWizard is returned by NewSession without a wizard.
	ErrNilWizard = errors.New("tui: wizard is nil")
)
