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
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"helm.sh/helm/v3/pkg/action"
	"helm.sh/helm/v3/pkg/cli"
	"helm.sh/helm/v3/pkg/storage/driver"
)

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 1 * time.Second
)

// Options configures the cluster connection for a client.
type Options struct {
	// KubeContext is the kubeconfig context to use. Empty means the current
	// context.
	KubeContext string

	// Kubeconfig is an explicit kubeconfig path. Empty means the default
	// loading rules.
	Kubeconfig string

	// Namespace scopes all list, uninstall, and existence operations.
	Namespace string

	// MaxRetries bounds retry attempts for list and uninstall calls.
	// Zero means the default of 3.
	MaxRetries uint64

	// RetryDelay is the wait between retry attempts. Zero means 1s.
	RetryDelay time.Duration
}

// actionClient implements Client using the Helm action API.
type actionClient struct {
	cfg        *action.Configuration
	namespace  string
	maxRetries uint64
	retryDelay time.Duration
	log        *zap.Logger
}

// NewClient creates a Client backed by the Helm SDK, targeting the namespace
// and kubeconfig context in opts. The connection itself is lazy; a bad context
// surfaces on the first operation.
func NewClient(opts Options, log *zap.Logger) (Client, error) {
	settings := cli.New()
	settings.SetNamespace(opts.Namespace)
	if opts.Kubeconfig != "" {
		settings.KubeConfig = opts.Kubeconfig
	}
	if opts.KubeContext != "" {
		settings.KubeContext = opts.KubeContext
	}

	cfg := new(action.Configuration)
	debugLog := func(format string, args ...interface{}) {
		log.Sugar().Debugf(format, args...)
	}
	if err := cfg.Init(settings.RESTClientGetter(), opts.Namespace, os.Getenv("HELM_DRIVER"), debugLog); err != nil {
		return nil, fmt.Errorf("failed to initialize helm action configuration: %w", err)
	}

	if opts.MaxRetries == 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.RetryDelay == 0 {
		opts.RetryDelay = defaultRetryDelay
	}

	return &actionClient{
		cfg:        cfg,
		namespace:  opts.Namespace,
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
		log:        log,
	}, nil
}

// List returns a snapshot of every release in the namespace, including
// releases in non-deployed states. Transient failures are retried.
func (c *actionClient) List(ctx context.Context) ([]Release, error) {
	c.log.Info("listing releases", zap.String("namespace", c.namespace))

	var releases []Release
	op := func() error {
		lister := action.NewList(c.cfg)
		lister.All = true
		lister.SetStateMask()

		found, err := lister.Run()
		if err != nil {
			return err
		}

		releases = releases[:0]
		for _, rel := range found {
			snapshot := Release{Name: rel.Name}
			if rel.Info != nil {
				snapshot.Created = rel.Info.LastDeployed.Time
			}
			releases = append(releases, snapshot)
		}
		return nil
	}

	if err := withRetry(ctx, c.log, "list releases", c.maxRetries, c.retryDelay, op); err != nil {
		return nil, fmt.Errorf("failed to list releases in namespace %q: %w", c.namespace, err)
	}

	c.log.Info("found releases",
		zap.String("namespace", c.namespace),
		zap.Int("count", len(releases)))
	return releases, nil
}

// Uninstall deletes the named release without keeping history. Failures that
// classify as something other than KindUnknown are not retried; retrying a
// missing release or a denied request cannot change the answer.
func (c *actionClient) Uninstall(ctx context.Context, name string) error {
	c.log.Info("uninstalling release",
		zap.String("release", name),
		zap.String("namespace", c.namespace))

	op := func() error {
		uninstall := action.NewUninstall(c.cfg)
		uninstall.KeepHistory = false

		_, err := uninstall.Run(name)
		if err != nil && ClassifyError(err) != KindUnknown {
			return backoff.Permanent(err)
		}
		return err
	}

	if err := withRetry(ctx, c.log, "uninstall release", c.maxRetries, c.retryDelay, op); err != nil {
		return fmt.Errorf("failed to uninstall release %q: %w", name, err)
	}
	return nil
}

// Exists reports whether the named release is still present in the namespace.
func (c *actionClient) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	get := action.NewGet(c.cfg)
	if _, err := get.Run(name); err != nil {
		if errors.Is(err, driver.ErrReleaseNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check release %q: %w", name, err)
	}
	return true, nil
}

// withRetry runs op with a constant backoff, a bounded attempt budget, and
// context-aware waits. Wrap an error in backoff.Permanent to stop early.
func withRetry(ctx context.Context, log *zap.Logger, operation string, maxRetries uint64, delay time.Duration, op func() error) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(delay), maxRetries), ctx)
	notify := func(err error, wait time.Duration) {
		log.Warn("retrying helm operation",
			zap.String("operation", operation),
			zap.Duration("wait", wait),
			zap.Error(err))
	}
	return backoff.RetryNotify(op, policy, notify)
}
