package model

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxLines is the line ceiling applied to a submission
const DefaultMaxLines = 500

// ErrEmptySource is returned when the submitted code is empty or whitespace only
var ErrEmptySource = errors.New("source code cannot be empty")

// LineLimitError is returned when a submission exceeds the line ceiling
type LineLimitError struct {
	Lines int
	Limit int
}

func (e *LineLimitError) Error() string {
	return fmt.Sprintf("source code has %d lines, exceeds %d lines limit", e.Lines, e.Limit)
}

// SourceSubmission is the code a user wants analyzed
type SourceSubmission struct {
	Code string
}

// LineCount counts lines the way the editor does: every newline starts a new
// line, so a trailing newline adds an empty one. Empty input has no lines.
func (s SourceSubmission) LineCount() int {
	if s.Code == "" {
		return 0
	}
	return strings.Count(s.Code, "\n") + 1
}

// FileLineCount counts lines the way the analysis service does for a file
// read from disk: a single final line terminator does not start a new line.
func (s SourceSubmission) FileLineCount() int {
	code := strings.TrimSuffix(s.Code, "\n")
	code = strings.TrimSuffix(code, "\r")
	if code == "" {
		return 0
	}
	return strings.Count(code, "\n") + 1
}

// Blank reports whether the code is empty or whitespace only
func (s SourceSubmission) Blank() bool {
	return strings.TrimSpace(s.Code) == ""
}

// Validate checks the submission against the line ceiling using the editor count
func (s SourceSubmission) Validate(maxLines int) error {
	return s.validate(s.LineCount(), maxLines)
}

// ValidateFile checks a file's contents against the line ceiling using FileLineCount
func (s SourceSubmission) ValidateFile(maxLines int) error {
	return s.validate(s.FileLineCount(), maxLines)
}

func (s SourceSubmission) validate(lines, maxLines int) error {
	if s.Blank() {
		return ErrEmptySource
	}
	if lines > maxLines {
		return &LineLimitError{Lines: lines, Limit: maxLines}
	}
	return nil
}

// CanSubmit reports whether the submit control should be enabled
func (s SourceSubmission) CanSubmit(maxLines int) bool {
	return s.Validate(maxLines) == nil
}

// OverLimit reports whether the code exceeds maxLines
func (s SourceSubmission) OverLimit(maxLines int) bool {
	return s.LineCount() > maxLines
}
