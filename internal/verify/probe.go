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

package verify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Result is the outcome of a removal check.
type Result int

const (
	// Removed means the release was observed absent.
	Removed Result = iota

	// StillPresent means the release was last observed present. It is the
	// result when verification is interrupted before reaching a verdict.
	StillPresent

	// TimedOut means the attempt budget was exhausted with the release
	// still observed present.
	TimedOut
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case Removed:
		return "removed"
	case TimedOut:
		return "timed out"
	default:
		return "still present"
	}
}

// ExistsFunc reports whether the named release is still present.
type ExistsFunc func(ctx context.Context, name string) (bool, error)

// Probe confirms a release is actually gone after a delete call was accepted.
// Deletion acceptance and deletion completion are not atomic in the cluster
// API; the probe closes that gap with a bounded poll instead of a fixed sleep.
type Probe struct {
	exists      ExistsFunc
	interval    time.Duration
	maxAttempts int

	// sleep waits between polls; injected so tests can simulate elapsed time.
	sleep func(ctx context.Context, d time.Duration) error

	log *zap.Logger
}

// NewProbe creates a probe that polls exists every interval, up to
// maxAttempts times.
func NewProbe(exists ExistsFunc, interval time.Duration, maxAttempts int, log *zap.Logger) *Probe {
	return &Probe{
		exists:      exists,
		interval:    interval,
		maxAttempts: maxAttempts,
		sleep:       waitContext,
		log:         log,
	}
}

// ConfirmRemoved polls for the named release's absence. The first poll that
// reports absence returns Removed immediately. A transient check error is
// treated as still-present rather than aborting verification. When the
// attempt budget is exhausted the probe returns TimedOut; it never blocks
// indefinitely. Context cancellation during a wait returns StillPresent with
// the context's error.
func (p *Probe) ConfirmRemoved(ctx context.Context, name string) (Result, error) {
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		present, err := p.exists(ctx, name)
		if err != nil {
			// Fail open: a flaky check reads as still present.
			p.log.Debug("existence check failed",
				zap.String("release", name),
				zap.Int("attempt", attempt),
				zap.Error(err))
			present = true
		}
		if !present {
			return Removed, nil
		}
		if attempt == p.maxAttempts {
			break
		}
		if err := p.sleep(ctx, p.interval); err != nil {
			return StillPresent, err
		}
	}

	p.log.Warn("verification budget exhausted",
		zap.String("release", name),
		zap.Int("attempts", p.maxAttempts))
	return TimedOut, nil
}

// waitContext sleeps for d or until the context is canceled.
func waitContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
