// search.go implements the "sid search" command.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saffron-lang/sid/internal/catalog"
	"github.com/saffron-lang/sid/internal/format"
	"github.com/saffron-lang/sid/internal/log"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search ingredients by name or id",
	Long:  `Case-insensitive substring search over English names and ids.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		query := args[0]

		c, err := loadCatalog()
		if err != nil {
			log.Event("cli:search", "search").Detail("query", query).Write(err)
			return PrintJSONError(err)
		}

		matches := c.Search(query)

		log.Event("cli:search", "search").
			Detail("query", query).
			Detail("count", len(matches)).
			Write(nil)

		if JSON() {
			if matches == nil {
				matches = []*catalog.Ingredient{}
			}
			return PrintJSON(matches)
		}
		if len(matches) == 0 {
			fmt.Fprintf(Out(), "No ingredients match %q\n", query)
			return nil
		}
		format.Table(Out(), matches)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
