package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"javasmells/src/config"
	"javasmells/src/model"
)

func sampleDoc() Document {
	return Document{
		Source:      "src/Order.java",
		GeneratedAt: time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
		Report: &model.AnalysisReport{
			Summary: model.ReportSummary{TotalLines: 120, TotalSmells: 3},
			Smells: []model.SmellEntry{
				{Type: "Long Method", Severity: "High", Location: "process()", Reason: "Method length estimated at 95 lines", SuggestedRefactoring: "Extract Method"},
				{Type: "Long Method", Severity: "Medium", Location: "load()", Reason: "Method length estimated at 45 lines", SuggestedRefactoring: "Extract Method"},
				{Type: "Primitive Obsession", Severity: "Low", Location: "Order", Reason: "5/6 fields are primitives", SuggestedRefactoring: "Replace Data Value with Object"},
			},
		},
	}
}

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(config.OutputConfig{IncludeSuggestions: true, NoColor: true}, "1.2.3")
	require.NoError(t, err)
	return g
}

func TestGenerate_JSONRoundTripsPayload(t *testing.T) {
	doc := sampleDoc()
	out, err := newGenerator(t).Generate(doc, "json")
	require.NoError(t, err)

	var got model.AnalysisReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	if diff := cmp.Diff(*doc.Report, got); diff != "" {
		t.Errorf("json output changed the payload (-want +got):\n%s", diff)
	}
	assert.Contains(t, out, `"suggestedRefactoring"`)
	assert.Contains(t, out, `"totalLines": 120`)
}

func TestGenerate_Markdown(t *testing.T) {
	out, err := newGenerator(t).Generate(sampleDoc(), "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "**Source:** src/Order.java")
	assert.Contains(t, out, "**Generated:** 2026-03-04 05:06:07 UTC")
	assert.Contains(t, out, "- **Total Lines:** 120")
	assert.Contains(t, out, "- **Detected Smells:** 3")
	assert.Contains(t, out, "### 1. [HIGH] Long Method")
	assert.Contains(t, out, "- **Refactoring:** _Extract Method_")
}

func TestGenerate_MarkdownWithoutSuggestions(t *testing.T) {
	g, err := NewGenerator(config.OutputConfig{IncludeSuggestions: false}, "dev")
	require.NoError(t, err)

	out, err := g.Generate(sampleDoc(), "md")
	require.NoError(t, err)
	assert.NotContains(t, out, "Refactoring")
}

func TestGenerate_MarkdownCleanAndError(t *testing.T) {
	g := newGenerator(t)

	out, err := g.Generate(Document{Report: &model.AnalysisReport{Smells: []model.SmellEntry{}}}, "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "No classic code smells detected.")

	out, err = g.Generate(Document{Report: &model.AnalysisReport{Error: "Syntax Error: bad"}}, "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "**Error:** Syntax Error: bad")
	assert.NotContains(t, out, "Summary")
}

func TestGenerate_SARIF(t *testing.T) {
	out, err := newGenerator(t).Generate(sampleDoc(), "sarif")
	require.NoError(t, err)

	var log struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name    string `json:"name"`
					Version string `json:"version"`
					Rules   []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID  string `json:"ruleId"`
				Level   string `json:"level"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &log))

	assert.Equal(t, "2.1.0", log.Version)
	require.Len(t, log.Runs, 1)
	run := log.Runs[0]
	assert.Equal(t, "1.2.3", run.Tool.Driver.Version)
	require.Len(t, run.Tool.Driver.Rules, 2, "duplicate smell types share a rule")
	assert.Equal(t, "long-method", run.Tool.Driver.Rules[0].ID)

	require.Len(t, run.Results, 3)
	assert.Equal(t, "error", run.Results[0].Level)
	assert.Equal(t, "warning", run.Results[1].Level)
	assert.Equal(t, "note", run.Results[2].Level)
	assert.Equal(t, "5/6 fields are primitives", run.Results[2].Message.Text)
}

func TestGenerate_Text(t *testing.T) {
	out, err := newGenerator(t).Generate(sampleDoc(), "text")
	require.NoError(t, err)

	assert.Contains(t, out, "src/Order.java")
	assert.Contains(t, out, "Total Lines: 120")
	assert.Contains(t, out, "Detected Smells: 3")
	assert.Contains(t, out, "1. [HIGH] Long Method")
	assert.Contains(t, out, "Refactoring: Replace Data Value with Object")
}

func TestGenerate_HTML(t *testing.T) {
	out, err := newGenerator(t).Generate(sampleDoc(), "html")
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "severity-high")
	assert.Contains(t, out, "Primitive Obsession")
}

func TestGenerate_Errors(t *testing.T) {
	g := newGenerator(t)

	_, err := g.Generate(sampleDoc(), "pdf")
	assert.EqualError(t, err, "unsupported format: pdf")

	_, err = g.Generate(Document{}, "json")
	assert.Error(t, err)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "md", Extension("markdown"))
	assert.Equal(t, "txt", Extension("text"))
	assert.Equal(t, "sarif", Extension("sarif"))
}
