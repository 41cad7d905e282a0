/*
Copyright © 2026 The saffron-lang authors
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: bare "sid" runs the batch validation - the tool's primary job -
// rather than printing help. The data directory is resolved once in
// PersistentPreRunE so every command sees the same dataset and the audit
// log can tag entries with it.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/saffron-lang/sid/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "sid",
	Short: "Validate and query the Saffron Ingredient Database",
	Long: `sid maintains a directory of ingredient description files (one JSON
file per ingredient) and checks them against the SID schema rules.

Run with no arguments to validate the whole dataset.`,
	SilenceUsage: true,
	RunE:         runValidate,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Tag audit log entries with the dataset being operated on
		if abs, err := filepath.Abs(dataDir()); err == nil {
			log.SetDataset(abs)
		}
		return nil
	},
}

// exitCode is the process exit status requested by a command. Commands
// that fail the run without a Go error (a validation batch with failures,
// fmt --check finding unformatted files) set this instead of returning an
// error, so cobra doesn't print a redundant "Error:" line after a report
// that already explained the failure.
var exitCode int

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and exits nonzero on error
// or when a command requested a failure status.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
	if exitCode != 0 {
		log.Close()
		os.Exit(exitCode)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
