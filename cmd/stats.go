// stats.go implements the "sid stats" command.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saffron-lang/sid/internal/format"
	"github.com/saffron-lang/sid/internal/log"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset totals",
	Long:  `Ingredient count, per-category breakdown and how many entries cite sources.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		c, err := loadCatalog()

		log.Event("cli:stats", "stats").Write(err)

		if err != nil {
			return PrintJSONError(err)
		}

		s := c.Stats()
		if JSON() {
			return PrintJSON(s)
		}
		format.Stats(Out(), s)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
