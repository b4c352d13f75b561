package rules

import (
	"strings"
	"testing"

	"gantry-hq/gantry/pkg/policy"
)

func TestNoGitHubExprInRun(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{
			"no expressions",
			`
jobs:
  build:
    runs-on: x
    steps:
      - run: echo hello
`,
			0,
		},
		{
			"expression in env is fine",
			`
jobs:
  build:
    runs-on: x
    steps:
      - run: echo "$TITLE"
        env:
          TITLE: ${{ github.event.pull_request.title }}
`,
			0,
		},
		{
			"one expression",
			`
jobs:
  build:
    runs-on: x
    steps:
      - run: echo "${{ github.ref }}"
`,
			1,
		},
		{
			"two expressions in one step",
			`
jobs:
  build:
    runs-on: x
    steps:
      - run: echo "${{ github.ref }} on ${{ github.sha }}"
`,
			2,
		},
		{
			"expressions across jobs and steps",
			`
jobs:
  build:
    runs-on: x
    steps:
      - run: echo ${{ github.ref }}
      - run: echo safe
  deploy:
    runs-on: x
    steps:
      - run: echo ${{ github.sha }}
`,
			2,
		},
		{
			"uses-only step has no run field",
			`
jobs:
  build:
    runs-on: x
    steps:
      - uses: actions/checkout@v4
        with:
          ref: ${{ github.head_ref }}
`,
			0,
		},
	}

	rule := &NoGitHubExprInRun{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := rule.Evaluate(parse(t, tt.src))
			if len(findings) != tt.want {
				t.Errorf("len(findings) = %d, want %d: %v", len(findings), tt.want, findings)
			}
		})
	}
}

func TestNoGitHubExprInRun_SpanCoversInterpolation(t *testing.T) {
	src := `jobs:
  build:
    runs-on: x
    steps:
      - run: echo "${{ github.event.pull_request.title }}"
`
	findings := (&NoGitHubExprInRun{}).Evaluate(parse(t, src))
	if len(findings) != 1 {
		t.Fatalf("len(findings) = %d, want 1", len(findings))
	}

	f := findings[0]
	if f.Severity != policy.SeverityHigh {
		t.Errorf("Severity = %v, want high", f.Severity)
	}
	if !strings.Contains(f.Message, `Step 1 of job "build"`) {
		t.Errorf("Message = %q, want step and job named", f.Message)
	}
	if got := src[f.Span.Offset:f.Span.End()]; got != "${{ github.event.pull_request.title }}" {
		t.Errorf("span slice = %q, want the full interpolation", got)
	}
}

func TestNoGitHubExprInRun_LiteralBlockSpan(t *testing.T) {
	src := `jobs:
  build:
    runs-on: x
    steps:
      - run: |
          set -e
          echo ${{ github.ref }}
`
	findings := (&NoGitHubExprInRun{}).Evaluate(parse(t, src))
	if len(findings) != 1 {
		t.Fatalf("len(findings) = %d, want 1", len(findings))
	}

	f := findings[0]
	if got := src[f.Span.Offset:f.Span.End()]; got != "${{ github.ref }}" {
		t.Errorf("span slice = %q, want %q", got, "${{ github.ref }}")
	}
	if f.Span.Line != 7 {
		t.Errorf("Line = %d, want 7", f.Span.Line)
	}
}
