// validate.go implements the "sid validate" command, the batch checker.
//
// Design: validation failures are not cobra errors. The report already
// says what failed, so the command sets the process exit code and returns
// nil - an error return would make cobra append a noise line under the
// summary. The same applies to a missing data directory, which prints the
// one setup message the original checker printed.

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saffron-lang/sid/internal/log"
	"github.com/saffron-lang/sid/internal/report"
	"github.com/saffron-lang/sid/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every ingredient file",
	Long: `Check every JSON file in the data directory against the SID schema
rules and print a per-file report plus a summary. Exits 1 if any file fails.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, _ []string) error {
	dir, maxFileSize, err := loadDataset()
	if err != nil {
		return PrintJSONError(err)
	}

	results, sum, err := validate.Run(dir, maxFileSize)

	log.Event("cli:validate", "validate").
		Path(dir).
		Detail("passed", sum.Passed).
		Detail("failed", sum.Failed).
		Detail("warnings", sum.Warned).
		Write(err)

	if errors.Is(err, validate.ErrNoDataDir) {
		if JSON() {
			exitCode = 1
			return PrintJSONError(err)
		}
		fmt.Fprintf(Out(), "Data directory not found: %s\n", dir)
		exitCode = 1
		return nil
	}
	if err != nil {
		return PrintJSONError(err)
	}

	if JSON() {
		if err := report.PrintJSON(Out(), results, sum); err != nil {
			return err
		}
	} else {
		report.Print(Out(), results, sum)
	}

	if sum.Failed > 0 {
		exitCode = 1
	}
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
