package cmd

import (
	ferrors "github.com/forgekit/cli/internal/errors"
	"github.com/forgekit/cli/internal/generator"
	"github.com/forgekit/cli/internal/output"
)

// printReport renders one generation report: every file outcome, every patch
// outcome, and a closing summary line.
func printReport(report *generator.Report) {
	for _, f := range report.Files {
		output.Println("  " + output.FormatOutcomeLine(f.Path, string(f.Outcome)))
		if f.Err != nil {
			output.Error("file failed", "path", f.Path, "error", f.Err)
		}
	}

	for _, p := range report.Patches {
		output.Println("  " + output.FormatOutcomeLine(p.Path+"  "+p.Anchor, string(p.Outcome)))
		if p.Err != nil {
			output.Error("patch failed", "anchor", p.Anchor, "error", p.Err)
		}
	}

	if report.FirstError() == nil {
		output.Println(output.FormatCheckmark("Done"))
	}
}

// reportExit converts a report's first failure into an ExitError. The
// per-file errors were already printed by printReport.
func reportExit(report *generator.Report) error {
	if err := report.FirstError(); err != nil {
		return &ferrors.ExitError{Code: ferrors.CodeFor(err), Err: err, Printed: true}
	}
	return nil
}

// abortExit wraps an operation-aborting error (validation, missing
// descriptor) so main exits with the matching code.
func abortExit(err error) error {
	return &ferrors.ExitError{Code: ferrors.CodeFor(err), Err: err}
}
