package submission

import (
	"context"
	"errors"
	"sync"

	"javasmells/src/model"
)

// Outcome is the settled result of one submission
type Outcome struct {
	Report *model.AnalysisReport
	// Message is the display text on failure, empty on success
	Message string
	Err     error
}

// Failed reports whether the submission did not produce a report
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Pending is an in-flight submission. It settles exactly once.
type Pending struct {
	RequestID string

	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
	outcome Outcome
}

func newPending(requestID string, cancel context.CancelFunc) *Pending {
	return &Pending{
		RequestID: requestID,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

func (p *Pending) settle(o Outcome) {
	p.once.Do(func() {
		p.outcome = o
		close(p.done)
		p.cancel()
	})
}

// Done is closed once the submission has settled
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Cancel abandons the submission. The request is aborted and the outcome
// settles with context.Canceled if it had not settled already.
func (p *Pending) Cancel() {
	p.cancel()
}

// Wait blocks until the submission settles or ctx ends. When ctx ends first
// the submission is cancelled and ctx's error is returned. An outcome that
// settled only because ctx was cancelled is reported the same way.
func (p *Pending) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-p.done:
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(p.outcome.Err, context.Canceled) {
			return Outcome{}, ctxErr
		}
		return p.outcome, nil
	case <-ctx.Done():
		p.Cancel()
		return Outcome{}, ctx.Err()
	}
}
