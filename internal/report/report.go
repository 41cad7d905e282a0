// Package report renders batch validation results for CLI display.
//
// Centralises presentation so internal/validate stays a pure checker. The
// line format is fixed: two-space status gutter, nine-space issue indent,
// a 50-column separator before the summary. Scripts parse this output, so
// the format is part of the tool's contract.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/saffron-lang/sid/internal/validate"
)

// separatorWidth is the width of the rule printed before the summary line.
const separatorWidth = 50

// issueIndent aligns issue bullets under the file path.
const issueIndent = "         - "

// Print writes the full human-readable report: one line per file, issue
// bullets for failures and warnings, then the separator, the results line
// and - when nothing failed - the final confirmation.
func Print(w io.Writer, results []validate.FileResult, sum validate.Summary) {
	for _, r := range results {
		printResult(w, r)
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", separatorWidth))
	fmt.Fprintf(w, "Results: %d passed, %d failed, %d warnings out of %d files\n",
		sum.Passed, sum.Failed, sum.Warned, sum.Total)

	if sum.Failed == 0 {
		fmt.Fprintln(w, "All validations passed!")
	}
}

func printResult(w io.Writer, r validate.FileResult) {
	if r.ParseError != "" {
		fmt.Fprintf(w, "  %s  %s: %s\n", validate.StatusFail, r.Path, r.ParseError)
		return
	}

	if r.Status == validate.StatusFail {
		fmt.Fprintf(w, "  %s  %s:\n", validate.StatusFail, r.Path)
		for _, e := range r.Errors {
			fmt.Fprintf(w, "%s%s\n", issueIndent, e)
		}
		return
	}

	fmt.Fprintf(w, "  %s  %s (%s)\n", r.Status, r.Path, r.Name)
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "%s%s\n", issueIndent, warn)
	}
}

// Report is the machine-readable form of a batch run.
type Report struct {
	Results []validate.FileResult `json:"results"`
	Summary validate.Summary      `json:"summary"`
}

// PrintJSON writes the report as indented JSON.
func PrintJSON(w io.Writer, results []validate.FileResult, sum validate.Summary) error {
	if results == nil {
		results = []validate.FileResult{}
	}
	data, err := json.MarshalIndent(Report{Results: results, Summary: sum}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
