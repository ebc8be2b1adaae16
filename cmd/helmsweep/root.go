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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikelane/helmsweep/internal/config"
	"github.com/mikelane/helmsweep/internal/confirm"
	"github.com/mikelane/helmsweep/internal/filter"
	"github.com/mikelane/helmsweep/internal/helm"
	"github.com/mikelane/helmsweep/internal/kube"
	"github.com/mikelane/helmsweep/internal/logging"
	"github.com/mikelane/helmsweep/internal/sweep"
	"github.com/mikelane/helmsweep/internal/validate"
	"github.com/mikelane/helmsweep/internal/verify"
)

type options struct {
	configPath  string
	kubeContext string
	kubeconfig  string
	namespace   string
	prefix      string
	days        int
	dryRun      bool
	force       bool
	verbose     bool
	noJSONLogs  bool
	logFile     string
	interval    time.Duration

	verifyInterval time.Duration
	verifyAttempts int
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "helmsweep",
		Short: "Delete stale Helm releases matching a name prefix and age threshold",
		Long: `helmsweep lists Helm releases in a namespace, selects those whose names
start with a prefix and whose last deployment is older than a threshold,
and uninstalls them. Every deletion is verified: an accepted uninstall
whose release is still observable after the verification budget is
reported as unconfirmed, not as succeeded.

Use --dry-run to see what would be deleted, --force to skip the
confirmation prompt, or --interval to sweep repeatedly as a daemon.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML defaults file")
	flags.StringVar(&opts.kubeContext, "context", "", "Kubernetes context to use")
	flags.StringVar(&opts.kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	flags.StringVar(&opts.namespace, "namespace", "", "Kubernetes namespace to sweep")
	flags.StringVar(&opts.prefix, "prefix", "", "Prefix to match release names against")
	flags.IntVar(&opts.days, "days", 0, "Age threshold in days")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Report what would be deleted without deleting")
	flags.BoolVar(&opts.force, "force", false, "Delete without asking for confirmation")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&opts.noJSONLogs, "no-json-logging", false, "Use console log format instead of JSON")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file in addition to stderr")
	flags.DurationVar(&opts.interval, "interval", 0, "Sweep repeatedly at this interval instead of once (implies --force)")
	flags.DurationVar(&opts.verifyInterval, "verify-interval", 2*time.Second, "Wait between post-delete existence checks")
	flags.IntVar(&opts.verifyAttempts, "verify-attempts", 10, "Maximum post-delete existence checks per release")

	cmd.MarkFlagsMutuallyExclusive("dry-run", "force")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	flags := cmd.Flags()

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}

	// Flags win over file values, file values over built-in defaults.
	if !flags.Changed("namespace") {
		opts.namespace = cfg.Kubernetes.DefaultNamespace
	}
	if !flags.Changed("prefix") {
		opts.prefix = cfg.Helm.ReleasePrefix
	}
	if !flags.Changed("days") {
		opts.days = cfg.Helm.DaysThreshold
	}
	if !flags.Changed("verify-interval") {
		opts.verifyInterval = time.Duration(cfg.Helm.Verification.PollIntervalSeconds) * time.Second
	}
	if !flags.Changed("verify-attempts") {
		opts.verifyAttempts = cfg.Helm.Verification.MaxAttempts
	}
	if !flags.Changed("log-file") {
		opts.logFile = cfg.Logging.File
	}

	logger, err := logging.New(logging.Options{
		Verbose: opts.verbose,
		JSON:    cfg.Logging.JSON && !opts.noJSONLogs,
		File:    opts.logFile,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := validateOptions(cfg, opts); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.kubeContext != "" {
		if err := kube.ContextExists(opts.kubeconfig, opts.kubeContext); err != nil {
			return err
		}
	}
	k8sClient, err := kube.NewClient(opts.kubeconfig, opts.kubeContext)
	if err != nil {
		return err
	}
	if err := kube.NamespaceExists(ctx, k8sClient, opts.namespace); err != nil {
		return err
	}

	helmClient, err := helm.NewClient(helm.Options{
		KubeContext: opts.kubeContext,
		Kubeconfig:  opts.kubeconfig,
		Namespace:   opts.namespace,
	}, logger)
	if err != nil {
		return err
	}

	probe := verify.NewProbe(helmClient.Exists, opts.verifyInterval, opts.verifyAttempts, logger)
	orchestrator := sweep.NewOrchestrator(helmClient, probe, logger)
	spec := filter.Spec{
		Prefix: opts.prefix,
		MaxAge: time.Duration(opts.days) * 24 * time.Hour,
	}

	if opts.interval > 0 {
		logger.Info("starting periodic sweep",
			zap.Duration("interval", opts.interval),
			zap.String("namespace", opts.namespace),
			zap.String("prefix", opts.prefix))
		return sweep.NewScheduler(helmClient, orchestrator, spec, opts.interval, logger).Start(ctx)
	}

	return sweepOnce(ctx, cmd, opts, helmClient, orchestrator, spec, logger)
}

func sweepOnce(ctx context.Context, cmd *cobra.Command, opts *options, helmClient helm.Client, orchestrator *sweep.Orchestrator, spec filter.Spec, logger *zap.Logger) error {
	releases, err := helmClient.List(ctx)
	if err != nil {
		// Fatal before the run starts: no report is produced.
		return err
	}

	candidates := filter.Select(releases, spec, time.Now().UTC())
	if len(candidates) == 0 {
		logger.Info("no stale releases found",
			zap.String("prefix", opts.prefix),
			zap.Int("days", opts.days))
		fmt.Fprintln(cmd.OutOrStdout(), "No stale releases found.")
		return nil
	}

	mode := sweep.ModeInteractive
	switch {
	case opts.dryRun:
		mode = sweep.ModeDryRun
	case opts.force:
		mode = sweep.ModeForce
	}

	out := cmd.OutOrStdout()
	if mode != sweep.ModeForce {
		fmt.Fprintln(out, "The following releases will be deleted:")
		for _, rel := range candidates {
			fmt.Fprintf(out, "  - %s\n", rel.Name)
		}
	}

	prompt := &confirm.TerminalPrompt{In: cmd.InOrStdin(), Out: out}
	proceed, err := confirm.ShouldProceed(len(candidates), mode, prompt)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if mode != sweep.ModeDryRun && !proceed {
		logger.Info("deletion canceled by user")
		fmt.Fprintln(out, "Deletion canceled.")
		return nil
	}

	report := orchestrator.Run(ctx, candidates, mode)
	printReport(out, logger, report, mode, len(candidates))

	// Per-release failures are expected outcomes of bulk deletion; the run
	// completed, so the process still exits 0.
	return nil
}

func printReport(out io.Writer, logger *zap.Logger, report sweep.Report, mode sweep.Mode, candidateCount int) {
	if mode == sweep.ModeDryRun {
		fmt.Fprintf(out, "Dry run: %d release(s) would be deleted.\n", report.Attempted)
		return
	}

	fmt.Fprintf(out, "Attempted %d of %d release(s): %d succeeded, %d not confirmed.\n",
		report.Attempted, candidateCount, report.Succeeded, len(report.Failed))

	for _, outcome := range report.Failed {
		fmt.Fprintf(out, "  - %s: %s", outcome.Release.Name, outcome.Status)
		if outcome.Err != nil {
			fmt.Fprintf(out, " (%v)", outcome.Err)
		}
		fmt.Fprintln(out)
	}

	if len(report.Failed) > 0 {
		logger.Error("run completed with failures",
			zap.Int("attempted", report.Attempted),
			zap.Int("succeeded", report.Succeeded),
			zap.Int("failed", len(report.Failed)))
	} else {
		logger.Info("run completed",
			zap.Int("attempted", report.Attempted),
			zap.Int("succeeded", report.Succeeded))
	}
}

func validateOptions(cfg config.Config, opts *options) error {
	if cfg.Kubernetes.ContextRequired && opts.kubeContext == "" {
		return errors.New("--context is required")
	}
	if opts.kubeContext != "" {
		if err := validate.KubernetesName(opts.kubeContext, "context"); err != nil {
			return err
		}
	}
	if err := validate.KubernetesName(opts.namespace, "namespace"); err != nil {
		return err
	}
	if err := validate.ReleasePrefix(opts.prefix); err != nil {
		return err
	}
	if err := validate.DaysThreshold(opts.days); err != nil {
		return err
	}
	if opts.interval > 0 {
		if opts.dryRun {
			return errors.New("--interval cannot be combined with --dry-run")
		}
		if !opts.force {
			return errors.New("--interval requires --force; a periodic sweep cannot prompt")
		}
	}
	if opts.verifyInterval <= 0 {
		return errors.New("--verify-interval must be positive")
	}
	if opts.verifyAttempts <= 0 {
		return errors.New("--verify-attempts must be positive")
	}
	return nil
}
