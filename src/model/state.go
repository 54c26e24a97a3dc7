package model

import (
	"errors"
	"fmt"
)

// Phase is the analyzer page's display phase
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrInvalidTransition is returned when a transition is not allowed from the current phase
var ErrInvalidTransition = errors.New("invalid view state transition")

// ViewState is the report/loading/error state owned by a single page.
// It is not safe for concurrent use; each view keeps its own.
type ViewState struct {
	phase  Phase
	report *AnalysisReport
	err    string
}

// NewViewState returns a state in the idle phase
func NewViewState() *ViewState {
	return &ViewState{phase: PhaseIdle}
}

// Phase returns the current phase
func (v *ViewState) Phase() Phase { return v.phase }

// Report returns the report shown in the success phase
func (v *ViewState) Report() *AnalysisReport { return v.report }

// ErrorMessage returns the message shown in the failure phase
func (v *ViewState) ErrorMessage() string { return v.err }

// Begin moves to loading and clears any previous report or error. Allowed from every phase.
func (v *ViewState) Begin() {
	v.phase = PhaseLoading
	v.report = nil
	v.err = ""
}

// Succeed stores the report
func (v *ViewState) Succeed(report *AnalysisReport) error {
	if v.phase != PhaseLoading {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, v.phase, PhaseSuccess)
	}
	if report == nil {
		return fmt.Errorf("%w: nil report", ErrInvalidTransition)
	}
	v.phase = PhaseSuccess
	v.report = report
	return nil
}

// Fail stores a display message
func (v *ViewState) Fail(message string) error {
	if v.phase != PhaseLoading {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, v.phase, PhaseFailure)
	}
	v.phase = PhaseFailure
	v.err = message
	return nil
}
