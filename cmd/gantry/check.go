package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"gantry-hq/gantry/pkg/cli"
	"gantry-hq/gantry/pkg/config"
	"gantry-hq/gantry/pkg/policy"
	"gantry-hq/gantry/pkg/watch"
	"gantry-hq/gantry/pkg/workflow"
)

var checkFlags struct {
	format    string
	failOn    string
	watchMode bool
}

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Check workflow files against the security policies",
	Long: `Check GitHub Actions workflow files against the security policies.

Each file is parsed and evaluated independently: a malformed file is
reported and does not affect the other files. Findings are printed one per
line as path:line:col: message (policy_id), sorted by source location.

Exit codes:
  0 - no findings at or above the fail-on threshold
  1 - findings at or above the fail-on threshold
  2 - a file failed to parse, or the invocation was invalid

Examples:
  # Check a single workflow
  gantry check .github/workflows/ci.yml

  # Check several workflows, fail only on high-severity findings
  gantry check --fail-on high .github/workflows/*.yml

  # JSON output for CI/CD
  gantry check --format json .github/workflows/ci.yml

  # Keep checking as files change
  gantry check --watch .github/workflows/ci.yml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFlags.format, "format", "", "output format: text, json")
	checkCmd.Flags().StringVar(&checkFlags.failOn, "fail-on", "", "minimum severity that fails the run: low, medium, high")
	checkCmd.Flags().BoolVar(&checkFlags.watchMode, "watch", false, "re-check files whenever they change")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if checkFlags.format != "" {
		cfg.Output.Format = checkFlags.format
	}
	if checkFlags.failOn != "" {
		cfg.FailOn = checkFlags.failOn
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	failOn, err := policy.ParseSeverity(cfg.FailOn)
	if err != nil {
		return err
	}

	reg, err := buildRegistry()
	if err != nil {
		return err
	}
	enabled := enabledPolicies(cfg, reg)

	driver := policy.NewDriver(logger).WithConcurrency(runtime.GOMAXPROCS(0))
	formatter := cli.NewFormatter(cli.OutputFormat(cfg.Output.Format))

	runOnce := func() *cli.Report {
		report := checkFiles(logger, cfg, driver, enabled, args)
		if err := formatter.FormatTo(os.Stdout, report); err != nil {
			logger.Error("failed to write report", "error", err)
		}
		return report
	}

	report := runOnce()

	if checkFlags.watchMode {
		return watchFiles(logger, cfg, args, runOnce)
	}

	switch {
	case report.HasErrors():
		os.Exit(exitError)
	case failsRun(report, failOn):
		os.Exit(exitFindings)
	}
	return nil
}

// checkFiles runs the parse-and-evaluate pipeline over every file. One
// file's failure never affects evaluation of the others.
func checkFiles(logger *slog.Logger, cfg *config.Config, driver *policy.Driver, policies []policy.Policy, files []string) *cli.Report {
	report := &cli.Report{Files: make([]cli.FileReport, 0, len(files))}

	for _, file := range files {
		wf, err := workflow.Parse(file)
		if err != nil {
			logger.Debug("file failed to parse", "file", file, "error", err)
			report.Files = append(report.Files, cli.FileReport{
				File:     file,
				Findings: []policy.Finding{},
				Error:    err.Error(),
			})
			continue
		}

		result := driver.Run(wf, policies)
		applySeverityOverrides(cfg, result)

		report.Files = append(report.Files, cli.FileReport{
			File:     file,
			RunID:    result.RunID,
			Findings: result.Findings,
		})
	}

	return report
}

// watchFiles blocks re-checking the files on every change until
// interrupted.
func watchFiles(logger *slog.Logger, cfg *config.Config, files []string, runOnce func() *cli.Report) error {
	watcher, err := watch.New(files, cfg.Watch.DebounceInterval, logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx := cli.SetupSignalHandler()
	return watcher.Watch(ctx, func() error {
		runOnce()
		return nil
	})
}

// enabledPolicies filters the registry by the per-policy configuration.
func enabledPolicies(cfg *config.Config, reg *policy.Registry) []policy.Policy {
	enabled := make([]policy.Policy, 0, reg.Len())
	for _, p := range reg.Policies() {
		desc := p.Descriptor()
		if cfg.PolicyEnabled(desc.ID, desc.DefaultEnabled) {
			enabled = append(enabled, p)
		}
	}
	return enabled
}

// applySeverityOverrides rewrites finding severities configured per
// policy.
func applySeverityOverrides(cfg *config.Config, result *policy.Result) {
	for i, f := range result.Findings {
		if s, ok := cfg.SeverityOverride(f.Policy); ok {
			result.Findings[i].Severity = policy.Severity(s)
		}
	}
}

// failsRun reports whether the findings reach the fail-on threshold.
func failsRun(report *cli.Report, failOn policy.Severity) bool {
	max := report.MaxSeverity()
	return max != "" && max.Rank() >= failOn.Rank()
}
