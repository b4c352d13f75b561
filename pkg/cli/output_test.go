package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gantry-hq/gantry/pkg/policy"
	"gantry-hq/gantry/pkg/workflow/ast"
)

func sampleReport() *Report {
	return &Report{
		Files: []FileReport{
			{
				File:  "ci.yml",
				RunID: "run-1",
				Findings: []policy.Finding{
					{
						Policy:   "no_all_permissions",
						Severity: policy.SeverityMedium,
						Message:  "The workflow should not use the 'read-all' permission.",
						Span:     ast.Span{Offset: 13, Line: 1, Column: 14, Length: 8},
					},
				},
			},
			{
				File:     "broken.yml",
				Findings: []policy.Finding{},
				Error:    "[syntax] did not find expected key",
			},
		},
	}
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextFormatter{}).FormatTo(&buf, sampleReport()); err != nil {
		t.Fatalf("FormatTo() failed: %v", err)
	}

	out := buf.String()
	wantFinding := "ci.yml:1:14: The workflow should not use the 'read-all' permission. (no_all_permissions)\n"
	if !strings.Contains(out, wantFinding) {
		t.Errorf("output %q missing finding line %q", out, wantFinding)
	}
	if !strings.Contains(out, "broken.yml: [syntax]") {
		t.Errorf("output %q missing error line", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).FormatTo(&buf, sampleReport()); err != nil {
		t.Fatalf("FormatTo() failed: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Files) != 2 {
		t.Fatalf("len(Files) = %d, want 2", len(decoded.Files))
	}
	if decoded.Files[0].Findings[0].Span.Column != 14 {
		t.Errorf("Span.Column = %d, want 14", decoded.Files[0].Findings[0].Span.Column)
	}
	if decoded.Files[1].Error == "" {
		t.Error("error field did not round-trip")
	}
}

func TestReport_Aggregates(t *testing.T) {
	report := sampleReport()

	if got := report.TotalFindings(); got != 1 {
		t.Errorf("TotalFindings() = %d, want 1", got)
	}
	if !report.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
	if got := report.MaxSeverity(); got != policy.SeverityMedium {
		t.Errorf("MaxSeverity() = %q, want medium", got)
	}

	empty := &Report{}
	if empty.HasErrors() {
		t.Error("empty report HasErrors() = true")
	}
	if got := empty.MaxSeverity(); got != policy.Severity("") {
		t.Errorf("empty report MaxSeverity() = %q, want empty", got)
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("NewFormatter(json) is not a JSONFormatter")
	}
	if _, ok := NewFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("NewFormatter(text) is not a TextFormatter")
	}
}
