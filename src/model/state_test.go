package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewState_HappyPath(t *testing.T) {
	v := NewViewState()
	assert.Equal(t, PhaseIdle, v.Phase())

	v.Begin()
	assert.Equal(t, PhaseLoading, v.Phase())

	report := &AnalysisReport{Summary: ReportSummary{TotalLines: 10}}
	require.NoError(t, v.Succeed(report))
	assert.Equal(t, PhaseSuccess, v.Phase())
	assert.Same(t, report, v.Report())
}

func TestViewState_BeginClearsPrevious(t *testing.T) {
	v := NewViewState()
	v.Begin()
	require.NoError(t, v.Fail("boom"))
	assert.Equal(t, "boom", v.ErrorMessage())

	v.Begin()
	assert.Equal(t, PhaseLoading, v.Phase())
	assert.Empty(t, v.ErrorMessage())
	assert.Nil(t, v.Report())

	require.NoError(t, v.Succeed(&AnalysisReport{}))
	v.Begin()
	assert.Nil(t, v.Report())
}

func TestViewState_InvalidTransitions(t *testing.T) {
	v := NewViewState()
	assert.ErrorIs(t, v.Succeed(&AnalysisReport{}), ErrInvalidTransition)
	assert.ErrorIs(t, v.Fail("x"), ErrInvalidTransition)
	assert.Equal(t, PhaseIdle, v.Phase())

	v.Begin()
	assert.ErrorIs(t, v.Succeed(nil), ErrInvalidTransition)
	require.NoError(t, v.Fail("x"))
	assert.ErrorIs(t, v.Succeed(&AnalysisReport{}), ErrInvalidTransition)
	assert.Equal(t, PhaseFailure, v.Phase())
}

func TestSeverityClass(t *testing.T) {
	tests := map[Severity]string{
		"High":     "high",
		"medium":   "medium",
		" LOW ":    "low",
		"critical": "critical",
		"blocker":  SeverityUnknown,
		"":         SeverityUnknown,
	}
	for in, want := range tests {
		assert.Equal(t, want, in.Class(), "severity %q", in)
	}
}

func TestCatalogRows(t *testing.T) {
	rows := CatalogRows()
	require.Len(t, rows, len(Catalog))
	assert.True(t, rows[0].FirstInCategory)
	assert.False(t, rows[1].FirstInCategory)
	assert.True(t, rows[3].FirstInCategory)
	assert.Equal(t, "OO Abusers", rows[3].Category)
}
