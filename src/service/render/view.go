package render

import "javasmells/src/model"

// Mode is one of the report panel's mutually exclusive display states
type Mode string

const (
	ModeLoading Mode = "loading"
	ModeEmpty   Mode = "empty"
	ModeError   Mode = "error"
	ModeReport  Mode = "report"
)

// View is what the report panel shows. It is a projection of the page
// state; every number and string comes from the service unchanged.
type View struct {
	Mode    Mode
	Report  *model.AnalysisReport
	Message string
}

// FromState maps the analyzer page state onto a display mode
func FromState(state *model.ViewState) View {
	if state == nil {
		return View{Mode: ModeEmpty}
	}
	switch state.Phase() {
	case model.PhaseLoading:
		return View{Mode: ModeLoading}
	case model.PhaseFailure:
		return View{Mode: ModeError, Message: state.ErrorMessage()}
	case model.PhaseSuccess:
		if r := state.Report(); r != nil {
			return View{Mode: ModeReport, Report: r}
		}
	}
	return View{Mode: ModeEmpty}
}

// ForReport returns the view of a settled report
func ForReport(r *model.AnalysisReport) View {
	if r == nil {
		return View{Mode: ModeEmpty}
	}
	if r.Error != "" {
		return View{Mode: ModeError, Message: r.Error}
	}
	return View{Mode: ModeReport, Report: r}
}

// Clean reports whether a populated report has no smells
func (v View) Clean() bool {
	return v.Mode == ModeReport && v.Report.Clean()
}
