// Package application defines the job application data model: the field
// names shared by every front end, the captured values, per-field error
// messages, and the pure validators that decide whether a value is
// acceptable. Nothing in this package holds navigation state; the wizard
// package composes these types into the step state machine.
package application
