package model

import "strings"

// Severity is the priority tag the backend attaches to a smell. Values are
// passed through verbatim; only display styling is derived from them.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityUnknown is the style class used for tags outside the known set
const SeverityUnknown = "unknown"

// Known reports whether the tag is one of the recognized severities
func (s Severity) Known() bool {
	switch Severity(strings.ToLower(strings.TrimSpace(string(s)))) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Class returns the display style for the tag
func (s Severity) Class() string {
	if !s.Known() {
		return SeverityUnknown
	}
	return strings.ToLower(strings.TrimSpace(string(s)))
}

// SmellEntry is a single detected smell. It has no identity beyond its position in the report.
type SmellEntry struct {
	Type                 string   `json:"type" yaml:"type"`
	Severity             Severity `json:"severity" yaml:"severity"`
	Location             string   `json:"location" yaml:"location"`
	Reason               string   `json:"reason" yaml:"reason"`
	SuggestedRefactoring string   `json:"suggestedRefactoring" yaml:"suggestedRefactoring"`
}

// ReportSummary contains the server-computed counters
type ReportSummary struct {
	TotalLines  int `json:"totalLines" yaml:"totalLines"`
	TotalSmells int `json:"totalSmells" yaml:"totalSmells"`
}

// AnalysisReport is the result of one backend analysis run.
// Error is set by the backend when it could not parse the submitted code.
type AnalysisReport struct {
	Summary ReportSummary `json:"summary" yaml:"summary"`
	Smells  []SmellEntry  `json:"smells" yaml:"smells"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Clean reports whether the backend found no smells
func (r *AnalysisReport) Clean() bool {
	return len(r.Smells) == 0
}
