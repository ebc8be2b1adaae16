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
	"github.com/mikelane/helmsweep/internal/helm"
)

// Mode selects how a run treats its candidates.
type Mode int

const (
	// ModeInteractive requires a confirmed prompt before deleting.
	ModeInteractive Mode = iota

	// ModeDryRun reports what would be deleted without deleting anything.
	ModeDryRun

	// ModeForce deletes without prompting.
	ModeForce
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeDryRun:
		return "dry-run"
	case ModeForce:
		return "force"
	default:
		return "interactive"
	}
}

// Status is the terminal state of one candidate's deletion.
type Status int

const (
	// StatusSucceeded means the delete was accepted and removal was verified.
	StatusSucceeded Status = iota

	// StatusFailed means the cluster rejected the delete call.
	StatusFailed

	// StatusVerificationTimedOut means the delete was accepted but removal
	// could not be observed within the verification budget. This is
	// ambiguous state, never upgraded to succeeded or downgraded to failed.
	StatusVerificationTimedOut
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "verification timed out"
	}
}

// Outcome records the terminal result of one candidate.
type Outcome struct {
	Release helm.Release
	Status  Status

	// Err is the cause for non-succeeded outcomes, nil otherwise.
	Err error
}

// Report aggregates the outcomes of one run. It is owned by the caller of
// Run and never persisted across runs.
type Report struct {
	// Attempted is the number of candidates the run actually processed.
	// It is smaller than the candidate count when the run was canceled;
	// unattempted candidates are not recorded at all.
	Attempted int

	// Succeeded is the number of verified deletions.
	Succeeded int

	// Failed holds every non-succeeded outcome, in processing order.
	Failed []Outcome
}
