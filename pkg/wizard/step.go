package wizard

import "fmt"

// Step indexes one of the form sections.
type Step int

const (
	StepPersonal Step = iota
	StepExperience
	StepReview
)

// StepCount is the number of sections.
const StepCount = 3

const (
	firstStep = StepPersonal
	lastStep  = StepReview
)

var stepTitles = [StepCount]string{
	StepPersonal:   "Personal Info",
	StepExperience: "Experience",
	StepReview:     "Review & Submit",
}

// Steps returns every step in order.
func Steps() []Step {
	return []Step{StepPersonal, StepExperience, StepReview}
}

// Valid reports whether s names an existing section.
func (s Step) Valid() bool {
	return s >= firstStep && s <= lastStep
}

// Title returns the section name.
func (s Step) Title() string {
	if !s.Valid() {
		return ""
	}
	return stepTitles[s]
}

// Header returns the numbered label shown in the step headers.
func (s Step) Header() string {
	if !s.Valid() {
		return ""
	}
	return fmt.Sprintf("%d. %s", int(s)+1, stepTitles[s])
}

func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepTitles[s]
}
