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

package helm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

func TestWithRetry_succeeds_after_transient_failures(t *testing.T) {
	attempts := 0
	op := func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	}

	err := withRetry(context.Background(), zap.NewNop(), "test", 3, time.Millisecond, op)

	if err != nil {
		t.Fatalf("withRetry() returned error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestWithRetry_exhausts_attempt_budget(t *testing.T) {
	attempts := 0
	op := func() error {
		attempts++
		return errors.New("always failing")
	}

	err := withRetry(context.Background(), zap.NewNop(), "test", 3, time.Millisecond, op)

	if err == nil {
		t.Fatal("withRetry() expected error, got nil")
	}
	// 1 initial attempt plus 3 retries
	if attempts != 4 {
		t.Errorf("expected 4 attempts, got %d", attempts)
	}
}

func TestWithRetry_permanent_error_stops_immediately(t *testing.T) {
	attempts := 0
	permErr := errors.New("not found")
	op := func() error {
		attempts++
		return backoff.Permanent(permErr)
	}

	err := withRetry(context.Background(), zap.NewNop(), "test", 3, time.Millisecond, op)

	if !errors.Is(err, permErr) {
		t.Fatalf("withRetry() = %v, want %v", err, permErr)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt for permanent error, got %d", attempts)
	}
}

func TestWithRetry_canceled_context_stops_retrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	op := func() error {
		attempts++
		cancel()
		return errors.New("transient")
	}

	err := withRetry(ctx, zap.NewNop(), "test", 5, 10*time.Millisecond, op)

	if err == nil {
		t.Fatal("withRetry() expected error after cancellation, got nil")
	}
	if attempts > 2 {
		t.Errorf("expected retries to stop after cancellation, got %d attempts", attempts)
	}
}
