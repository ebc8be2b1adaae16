/*
Copyright (c) 2025 Mike Lane

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package sweep

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mikelane/helmsweep/internal/helm"
	"github.com/mikelane/helmsweep/internal/verify"
)

// Deleter is the slice of the Helm client the orchestrator needs.
type Deleter interface {
	Uninstall(ctx context.Context, name string) error
}

// Verifier confirms a release is actually gone after a delete call.
type Verifier interface {
	ConfirmRemoved(ctx context.Context, name string) (verify.Result, error)
}

// Orchestrator drives the per-release delete, verify, classify sequence and
// aggregates the outcomes into a Report.
type Orchestrator struct {
	client   Deleter
	verifier Verifier
	log      *zap.Logger
}

// NewOrchestrator creates an orchestrator over the given delete and verify
// collaborators.
func NewOrchestrator(client Deleter, verifier Verifier, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		client:   client,
		verifier: verifier,
		log:      log,
	}
}

// Run processes candidates sequentially, in input order. Releases are never
// deleted in parallel; Helm operations against the same namespace are not
// assumed to be safely concurrent, and sequential processing keeps failure
// attribution unambiguous.
//
// In ModeDryRun no delete is issued and every candidate is reported as
// succeeded; the report is what the caller surfaces to the user. In any other
// mode, one candidate's failure never aborts the run. Context cancellation
// stops the run before the next delete: the report then covers only the
// candidates processed so far, and the remainder are absent from it rather
// than recorded as failed.
func (o *Orchestrator) Run(ctx context.Context, candidates []helm.Release, mode Mode) Report {
	var report Report

	if mode == ModeDryRun {
		for _, rel := range candidates {
			o.log.Info("would delete release", zap.String("release", rel.Name))
		}
		report.Attempted = len(candidates)
		report.Succeeded = len(candidates)
		return report
	}

	for _, rel := range candidates {
		if ctx.Err() != nil {
			o.log.Warn("run canceled, remaining candidates left unattempted",
				zap.Int("attempted", report.Attempted),
				zap.Int("candidates", len(candidates)))
			break
		}

		report.Attempted++
		outcome := o.deleteAndVerify(ctx, rel)
		if outcome.Status == StatusSucceeded {
			report.Succeeded++
			continue
		}
		report.Failed = append(report.Failed, outcome)
	}

	return report
}

// deleteAndVerify runs one candidate to its terminal outcome.
func (o *Orchestrator) deleteAndVerify(ctx context.Context, rel helm.Release) Outcome {
	if err := o.client.Uninstall(ctx, rel.Name); err != nil {
		o.log.Error("failed to delete release",
			zap.String("release", rel.Name),
			zap.String("kind", helm.ClassifyError(err).String()),
			zap.Error(err))
		return Outcome{Release: rel, Status: StatusFailed, Err: err}
	}

	result, err := o.verifier.ConfirmRemoved(ctx, rel.Name)
	switch {
	case err != nil:
		// Delete was accepted; verification was interrupted. The state is
		// ambiguous, same as a timeout.
		o.log.Warn("verification interrupted",
			zap.String("release", rel.Name),
			zap.Error(err))
		return Outcome{Release: rel, Status: StatusVerificationTimedOut, Err: err}
	case result == verify.Removed:
		o.log.Info("release deleted and verified", zap.String("release", rel.Name))
		return Outcome{Release: rel, Status: StatusSucceeded}
	default:
		o.log.Warn("delete accepted but removal unconfirmed",
			zap.String("release", rel.Name))
		return Outcome{
			Release: rel,
			Status:  StatusVerificationTimedOut,
			Err:     fmt.Errorf("release %q still present after verification budget", rel.Name),
		}
	}
}
