package controller

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"javasmells/src/config"
	"javasmells/src/model"
	"javasmells/src/util"
)

func testConfig(t *testing.T, handler http.HandlerFunc) *config.Config {
	t.Helper()
	restore := util.SetLogger(util.FromZap(zaptest.NewLogger(t)))
	t.Cleanup(restore)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.Backend.URL = srv.URL
	cfg.Output.OutputDir = t.TempDir()
	cfg.Output.NoColor = true
	return cfg
}

func TestAnalyze_Success(t *testing.T) {
	cfg := testConfig(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"summary":{"totalLines":3,"totalSmells":1},"smells":[{"type":"Lazy Class","severity":"Low","location":"A","reason":"little","suggestedRefactoring":"Inline Class"}]}`)
	})

	doc, err := NewAnalysisController(cfg).Analyze(context.Background(), AnalyzeRequest{Source: "A.java", Code: "class A {\n}\n"})
	require.NoError(t, err)
	assert.Equal(t, "A.java", doc.Source)
	assert.False(t, doc.GeneratedAt.IsZero())
	assert.Equal(t, 1, doc.Report.Summary.TotalSmells)
	assert.Equal(t, "Lazy Class", doc.Report.Smells[0].Type)
}

func TestAnalyze_Failure(t *testing.T) {
	cfg := testConfig(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"Source code exceeds 500 lines limit"}`)
	})

	_, err := NewAnalysisController(cfg).Analyze(context.Background(), AnalyzeRequest{Code: "class A {}"})
	var aErr *AnalysisError
	require.True(t, errors.As(err, &aErr))
	assert.Equal(t, "Source code exceeds 500 lines limit", aErr.Message)
}

func TestAnalyze_InvalidInputSkipsBackend(t *testing.T) {
	called := false
	cfg := testConfig(t, func(w http.ResponseWriter, r *http.Request) { called = true })
	cfg.Input.MaxLines = 2

	ctrl := NewAnalysisController(cfg)
	_, err := ctrl.Analyze(context.Background(), AnalyzeRequest{Code: ""})
	assert.ErrorIs(t, err, model.ErrEmptySource)

	_, err = ctrl.Analyze(context.Background(), AnalyzeRequest{Code: "a\nb\nc"})
	var limitErr *model.LineLimitError
	assert.ErrorAs(t, err, &limitErr)
	assert.False(t, called)
}

func TestGenerateReports_WritesEachFormat(t *testing.T) {
	cfg := testConfig(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"summary":{"totalLines":1,"totalSmells":0},"smells":[]}`)
	})
	cfg.Output.Formats = []string{"json", "markdown", "html"}

	doc, err := NewAnalysisController(cfg).Analyze(context.Background(), AnalyzeRequest{Source: "src/Foo.java", Code: "class Foo {}"})
	require.NoError(t, err)

	rc, err := NewReportController(cfg)
	require.NoError(t, err)
	paths, err := rc.GenerateReports(doc)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	assert.Equal(t, filepath.Join(cfg.Output.OutputDir, "Foo-smell-report.json"), paths[0])
	assert.Equal(t, filepath.Join(cfg.Output.OutputDir, "Foo-smell-report.md"), paths[1])
	assert.True(t, strings.HasSuffix(paths[2], ".html"))

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Contains(t, string(data), "No classic code smells detected.")
}

func TestGetOutputPath_Stdin(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = "out"
	rc, err := NewReportController(cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "stdin-smell-report.sarif"), rc.getOutputPath("-", "sarif"))
}

func TestGetOutputPath_SameBaseNameDoesNotCollide(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = "out"
	rc, err := NewReportController(cfg)
	require.NoError(t, err)

	first := rc.getOutputPath("a/Foo.java", "json")
	second := rc.getOutputPath("b/Foo.java", "json")
	third := rc.getOutputPath("c/Foo.java", "markdown")

	assert.Equal(t, filepath.Join("out", "Foo-smell-report.json"), first)
	assert.Equal(t, filepath.Join("out", "Foo-2-smell-report.json"), second)
	assert.Equal(t, filepath.Join("out", "Foo-3-smell-report.md"), third)
	assert.Equal(t, first, rc.getOutputPath("a/./Foo.java", "json"), "same source keeps its name")
	assert.Equal(t, filepath.Join("out", "Foo-2-smell-report.md"), rc.getOutputPath("b/Foo.java", "markdown"))
}
