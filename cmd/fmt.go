// fmt.go implements the "sid fmt" command for canonical JSON formatting.
//
// Design: --check never writes. It prints a diff per divergent file and
// sets exit code 1, which makes it usable as a CI gate alongside
// "sid validate". Without --check the files are rewritten in place.

package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/saffron-lang/sid/internal/canon"
	"github.com/saffron-lang/sid/internal/diff"
	"github.com/saffron-lang/sid/internal/log"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file...]",
	Short: "Canonicalise data file formatting",
	Long: `Rewrite data files into canonical form: two-space JSON indentation
with a trailing newline. Key order is left as written.

With --check, nothing is rewritten; a diff is printed for each file that
needs formatting and the command exits 1.`,
	RunE: runFmt,
}

func runFmt(_ *cobra.Command, args []string) error {
	files := args
	if len(files) == 0 {
		dir, _, err := loadDataset()
		if err != nil {
			return PrintJSONError(err)
		}
		files, err = dataFiles(dir)
		if err != nil {
			return PrintJSONError(err)
		}
	}

	colour := term.IsTerminal(int(os.Stdout.Fd()))
	var changed []string

	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return PrintJSONError(fmt.Errorf("reading %s: %w", path, err))
		}

		want, err := canon.Indent(raw)
		if err != nil {
			// Unparseable files belong to "sid validate"; skip with a note.
			fmt.Fprintf(os.Stderr, "sid: skipping %s: %v\n", path, err)
			continue
		}
		if string(raw) == string(want) {
			continue
		}

		changed = append(changed, path)
		if fmtCheck {
			r := diff.Compute(string(raw), string(want), path+" (current)", path+" (formatted)")
			fmt.Fprint(Out(), r.Format(colour))
			continue
		}

		if err := os.WriteFile(path, want, 0644); err != nil {
			return PrintJSONError(fmt.Errorf("writing %s: %w", path, err))
		}
		fmt.Fprintf(Out(), "formatted %s\n", filepath.ToSlash(path))
	}

	log.Event("cli:fmt", "format").
		Detail("check", fmtCheck).
		Detail("changed", len(changed)).
		Write(nil)

	if err := PrintJSON(map[string]any{"check": fmtCheck, "changed": changed}); err != nil {
		return err
	}

	if fmtCheck {
		if len(changed) > 0 {
			exitCode = 1
		} else if !JSON() {
			fmt.Fprintln(Out(), "All files formatted")
		}
	}
	return nil
}

// dataFiles returns every *.json file under dir in sorted path order.
func dataFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Report unformatted files without rewriting; exit 1 if any")
	rootCmd.AddCommand(fmtCmd)
}
