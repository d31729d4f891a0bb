// Package wizard implements the three-step job application flow.
//
// A Shell owns the active step pointer and asks a Gate for approval before
// moving forward. A Form owns the captured values, the per-field errors and
// the terms and submitted flags, and acts as the Shell's Gate. Wizard wires
// one of each together and exposes the user intents front ends translate
// their events into: SetField, SetTerms, Blur, Next, Previous, JumpTo and
// Submit. View returns a tagged variant describing what the active step
// should display.
//
// The flow is single-use: once Submit succeeds every further intent returns
// ErrSubmitted. A Wizard is not safe for concurrent use; callers serving
// several goroutines must serialise access.
package wizard
