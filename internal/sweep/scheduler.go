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
	"time"

	"go.uber.org/zap"

	"github.com/mikelane/helmsweep/internal/filter"
	"github.com/mikelane/helmsweep/internal/helm"
)

// Lister is the slice of the Helm client the scheduler needs.
type Lister interface {
	List(ctx context.Context) ([]helm.Release, error)
}

// Scheduler runs repeated sweep passes at a fixed interval. Each pass lists
// the namespace, selects stale releases, and deletes them in force mode;
// prompting makes no sense in a loop with nobody at the terminal.
type Scheduler struct {
	lister       Lister
	orchestrator *Orchestrator
	spec         filter.Spec
	interval     time.Duration
	now          func() time.Time
	log          *zap.Logger
}

// NewScheduler creates a scheduler that sweeps every interval.
func NewScheduler(lister Lister, orchestrator *Orchestrator, spec filter.Spec, interval time.Duration, log *zap.Logger) *Scheduler {
	return &Scheduler{
		lister:       lister,
		orchestrator: orchestrator,
		spec:         spec,
		interval:     interval,
		now:          time.Now,
		log:          log,
	}
}

// Start runs sweep passes until the context is canceled. It returns nil on
// graceful shutdown. A failed pass is logged and the loop continues; a
// transient listing failure must not stop the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.sweep(ctx); err != nil {
				s.log.Error("sweep pass failed", zap.Error(err))
			}
		}
	}
}

// sweep performs a single list, select, delete pass.
func (s *Scheduler) sweep(ctx context.Context) error {
	releases, err := s.lister.List(ctx)
	if err != nil {
		return err
	}

	candidates := filter.Select(releases, s.spec, s.now().UTC())
	if len(candidates) == 0 {
		s.log.Debug("no stale releases found",
			zap.String("prefix", s.spec.Prefix),
			zap.Duration("max_age", s.spec.MaxAge))
		return nil
	}

	report := s.orchestrator.Run(ctx, candidates, ModeForce)
	s.log.Info("sweep pass complete",
		zap.Int("attempted", report.Attempted),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", len(report.Failed)))
	return nil
}
