// Package cli provides output formatting and common helpers for the
// gantry command.
//
// The check report supports text and JSON rendering:
//
//	formatter := cli.NewFormatter(cli.FormatJSON)
//	if err := formatter.FormatTo(os.Stdout, report); err != nil {
//	    return err
//	}
//
// Text output is one finding per line:
//
//	.github/workflows/ci.yml:7:18: Job "build" should not use the 'write-all' permission. (no_all_permissions)
//
// For graceful shutdown of watch mode on SIGINT/SIGTERM:
//
//	ctx := cli.SetupSignalHandler()
package cli
