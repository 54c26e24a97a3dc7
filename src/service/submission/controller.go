package submission

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"javasmells/src/model"
	"javasmells/src/service/analysisapi"
	"javasmells/src/util"
)

// Analyzer is the backend operation a submission performs
type Analyzer interface {
	Analyze(ctx context.Context, req analysisapi.AnalyzeRequest) (*model.AnalysisReport, error)
}

// Controller issues submissions to the analysis service
type Controller struct {
	analyzer Analyzer
	maxLines int
}

// NewController creates a submission controller
func NewController(analyzer Analyzer, maxLines int) *Controller {
	if maxLines <= 0 {
		maxLines = model.DefaultMaxLines
	}
	return &Controller{analyzer: analyzer, maxLines: maxLines}
}

// MaxLines returns the line ceiling enforced before submitting
func (c *Controller) MaxLines() int {
	return c.maxLines
}

// Submit starts one request for code and returns immediately. The request is
// bound to ctx and to the returned Pending's Cancel.
func (c *Controller) Submit(ctx context.Context, code string) *Pending {
	requestID := uuid.NewString()
	ctx, cancel := context.WithCancel(analysisapi.WithRequestID(ctx, requestID))
	p := newPending(requestID, cancel)
	log := util.DefaultLogger().With("request_id", requestID)

	go func() {
		start := time.Now()
		report, err := c.analyzer.Analyze(ctx, analysisapi.AnalyzeRequest{SourceCode: code})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Debug("Submission abandoned after %v", time.Since(start))
			} else {
				log.Warn("Submission failed after %v: %v", time.Since(start), err)
			}
			p.settle(Outcome{Report: report, Message: analysisapi.ErrorMessage(err), Err: err})
			return
		}
		log.Info("Submission completed in %v: %d smells", time.Since(start), len(report.Smells))
		p.settle(Outcome{Report: report})
	}()

	return p
}

// Run drives state through one submission: loading, then success or failure.
// Invalid input is rejected before the state changes. If ctx ends before the
// request settles, the request is abandoned and state is left untouched.
func (c *Controller) Run(ctx context.Context, state *model.ViewState, code string) error {
	if err := (model.SourceSubmission{Code: code}).Validate(c.maxLines); err != nil {
		return err
	}

	state.Begin()
	outcome, err := c.Submit(ctx, code).Wait(ctx)
	if err != nil {
		return err
	}

	if outcome.Failed() {
		return state.Fail(outcome.Message)
	}
	return state.Succeed(outcome.Report)
}
