package controller

import (
	"context"
	"time"

	"javasmells/src/config"
	"javasmells/src/model"
	"javasmells/src/service/analysisapi"
	"javasmells/src/service/report"
	"javasmells/src/service/submission"
	"javasmells/src/util"
)

// AnalysisController orchestrates submitting code and collecting the report
type AnalysisController struct {
	cfg       *config.Config
	client    *analysisapi.Client
	submitter *submission.Controller
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	client := analysisapi.NewClient(cfg.Backend)
	util.Debug("Analysis client initialized (endpoint: %s%s)", cfg.Backend.URL, cfg.Backend.AnalyzePath)
	return &AnalysisController{
		cfg:       cfg,
		client:    client,
		submitter: submission.NewController(client, cfg.Input.MaxLines),
	}
}

// AnalyzeRequest represents one piece of code to analyze
type AnalyzeRequest struct {
	// Source names where the code came from, e.g. a file path
	Source string
	Code   string
}

// AnalysisError carries the display message of a failed submission
type AnalysisError struct {
	Source  string
	Message string
	Err     error
}

func (e *AnalysisError) Error() string { return e.Message }

func (e *AnalysisError) Unwrap() error { return e.Err }

// Submitter returns the submission controller shared by all views
func (c *AnalysisController) Submitter() *submission.Controller {
	return c.submitter
}

// Client returns the analysis service client
func (c *AnalysisController) Client() *analysisapi.Client {
	return c.client
}

// Analyze validates the code as file contents, submits it and waits for the outcome
func (c *AnalysisController) Analyze(ctx context.Context, req AnalyzeRequest) (*report.Document, error) {
	startTime := time.Now()

	if err := (model.SourceSubmission{Code: req.Code}).ValidateFile(c.cfg.Input.MaxLines); err != nil {
		return nil, err
	}

	util.Info("Submitting %s for analysis", sourceName(req.Source))
	pending := c.submitter.Submit(ctx, req.Code)
	outcome, err := pending.Wait(ctx)
	if err != nil {
		return nil, err
	}
	if outcome.Failed() {
		return nil, &AnalysisError{Source: req.Source, Message: outcome.Message, Err: outcome.Err}
	}

	util.Info("Analysis of %s complete: %d smells over %d lines (took %v)",
		sourceName(req.Source), outcome.Report.Summary.TotalSmells, outcome.Report.Summary.TotalLines, time.Since(startTime))

	return &report.Document{
		Source:      req.Source,
		GeneratedAt: time.Now().UTC(),
		Report:      outcome.Report,
	}, nil
}

// Health checks that the analysis service is reachable
func (c *AnalysisController) Health(ctx context.Context) (*analysisapi.HealthResponse, error) {
	return c.client.Health(ctx)
}

func sourceName(source string) string {
	if source == "" {
		return "input"
	}
	return source
}
