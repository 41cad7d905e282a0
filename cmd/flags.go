/*
Copyright © 2026 The saffron-lang authors
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
//
// Design: Flags are defined as package-level variables and bound to the
// root command. Commands read them through small helpers rather than
// touching cobra internals. The JSON() helper simplifies output format
// detection across all commands.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/saffron-lang/sid/internal/config"
)

var validOutputFormats = []string{"json"}

var (
	output string
	data   string
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if error was printed (suppressing Cobra error), or the
// original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	// We ignore the error from PrintJSON here because if we can't print the
	// error, checking it is futile. Returning nil suppresses Cobra's
	// duplicate printing.
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

// dataDir resolves the data directory without touching the config file.
// Priority: --data flag > config data.dir > "data". Used where a config
// load failure must not mask the real operation (audit log tagging).
func dataDir() string {
	if data != "" {
		return data
	}
	if cfg, err := config.Load(); err == nil {
		return cfg.DataDir()
	}
	return config.DefaultDataDir
}

// loadDataset resolves the data directory and parser limits from flags and
// config. A malformed config file is a hard error here - commands should
// not silently validate the wrong dataset.
func loadDataset() (dir string, maxFileSize int64, err error) {
	cfg, err := config.Load()
	if err != nil {
		return "", 0, err
	}
	dir = cfg.DataDir()
	if data != "" {
		dir = data
	}
	return dir, cfg.MaxFileSize(), nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVar(&data, "data", "", "Data directory (overrides config data.dir)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
