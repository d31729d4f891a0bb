package wizard

// Gate approves leaving a step in the forward direction. Implementations may
// record the reasons for a refusal; the Shell only needs the verdict.
type Gate interface {
	ValidateStep(step Step) bool
}

// GateFunc adapts a function to the Gate interface.
type GateFunc func(step Step) bool

// ValidateStep calls fn.
func (fn GateFunc) ValidateStep(step Step) bool {
	return fn(step)
}

// Shell holds the active step pointer. Moving backwards is unconditional;
// moving forwards requires the gate to approve the current step.
type Shell struct {
	step Step
	gate Gate
}

// NewShell returns a Shell positioned on the first step. A nil gate approves
// every move.
func NewShell(gate Gate) *Shell {
	return &Shell{step: firstStep, gate: gate}
}

// Step returns the active step.
func (s *Shell) Step() Step {
	return s.step
}

// CanRetreat reports whether Retreat would move the pointer.
func (s *Shell) CanRetreat() bool {
	return s.step > firstStep
}

// IsLast reports whether the active step is the final section.
func (s *Shell) IsLast() bool {
	return s.step == lastStep
}

// Advance gates the active step and, when approved, moves to the next step,
// clamping at the last one. The return value is the gate verdict.
func (s *Shell) Advance() bool {
	if !s.approve() {
		return false
	}
	if s.step < lastStep {
		s.step++
	}
	return true
}

// Retreat moves to the previous step, clamping at the first one.
func (s *Shell) Retreat() {
	if s.step > firstStep {
		s.step--
	}
}

// JumpTo moves to target. Backward and same-step jumps are unconditional;
// forward jumps only gate the active step, never the steps in between.
func (s *Shell) JumpTo(target Step) (bool, error) {
	if !target.Valid() {
		return false, ErrStepOutOfRange
	}
	if target <= s.step {
		s.step = target
		return true, nil
	}
	if !s.approve() {
		return false, nil
	}
	s.step = target
	return true, nil
}

func (s *Shell) approve() bool {
	if s.gate == nil {
		return true
	}
	return s.gate.ValidateStep(s.step)
}
