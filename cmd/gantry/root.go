package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gantry-hq/gantry/pkg/policy"
	"gantry-hq/gantry/pkg/policy/rules"
)

// Exit codes. Findings at or above the fail-on threshold are distinguished
// from operational failures so CI scripts can tell them apart.
const (
	exitOK       = 0
	exitFindings = 1
	exitError    = 2
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gantry",
	Short: "Gantry - security linter for GitHub Actions workflows",
	Long: `Gantry is a static-analysis tool that inspects GitHub Actions workflow
files and flags configurations that violate security best practices.

It parses workflow definitions with full source position tracking, so every
finding points at the exact line and column of the offending text:
  - Overly broad GITHUB_TOKEN permission grants (read-all / write-all)
  - Jobs missing least-privilege permission declarations
  - GitHub expressions interpolated directly into run scripts

For more information, visit: https://github.com/gantry-hq/gantry`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".gantry.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupLogger configures the process logger. Verbose mode enables debug
// logging; otherwise only warnings and errors reach stderr.
func setupLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// buildRegistry constructs the process-wide policy registry from the
// built-in policy set. Duplicate identifiers are a programming error and
// abort startup.
func buildRegistry() (*policy.Registry, error) {
	reg, err := policy.NewRegistry(rules.Builtin()...)
	if err != nil {
		return nil, fmt.Errorf("policy registry construction failed: %w", err)
	}
	return reg, nil
}
