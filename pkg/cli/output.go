package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gantry-hq/gantry/pkg/policy"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is plain text output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output for scripting and CI consumption.
	FormatJSON OutputFormat = "json"
)

// FileReport is the check result for a single workflow file.
type FileReport struct {
	// File is the path as given on the command line.
	File string `json:"file"`

	// RunID identifies the evaluation run, for correlation with logs.
	RunID string `json:"run_id,omitempty"`

	// Findings are the policy violations, in the driver's sorted order.
	Findings []policy.Finding `json:"findings"`

	// Error is the load or model error that stopped the pipeline for
	// this file, empty on success. One file failing never affects the
	// others.
	Error string `json:"error,omitempty"`
}

// Report is the aggregate result of one check invocation.
type Report struct {
	Files []FileReport `json:"files"`
}

// TotalFindings returns the number of findings across all files.
func (r *Report) TotalFindings() int {
	total := 0
	for _, f := range r.Files {
		total += len(f.Findings)
	}
	return total
}

// HasErrors reports whether any file failed to load or model.
func (r *Report) HasErrors() bool {
	for _, f := range r.Files {
		if f.Error != "" {
			return true
		}
	}
	return false
}

// MaxSeverity returns the highest finding severity across all files, or
// the empty severity when there are no findings.
func (r *Report) MaxSeverity() policy.Severity {
	var max policy.Severity
	for _, file := range r.Files {
		for _, finding := range file.Findings {
			if finding.Severity.Rank() > max.Rank() {
				max = finding.Severity
			}
		}
	}
	return max
}

// Formatter renders a check report.
type Formatter interface {
	FormatTo(w io.Writer, report *Report) error
}

// TextFormatter renders findings one per line in the
// "path:line:col: message (policy_id)" format.
type TextFormatter struct{}

// FormatTo implements Formatter.
func (f *TextFormatter) FormatTo(w io.Writer, report *Report) error {
	for _, file := range report.Files {
		if file.Error != "" {
			if _, err := fmt.Fprintf(w, "%s: %s\n", file.File, file.Error); err != nil {
				return err
			}
			continue
		}
		for _, finding := range file.Findings {
			if _, err := fmt.Fprintf(w, "%s:%s\n", file.File, finding); err != nil {
				return err
			}
		}
	}
	return nil
}

// JSONFormatter renders the full report as indented JSON.
type JSONFormatter struct{}

// FormatTo implements Formatter.
func (f *JSONFormatter) FormatTo(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// NewFormatter creates a formatter for the specified format.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &TextFormatter{}
	}
}
