// ls.go implements the "sid ls" command for listing ingredients.

package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saffron-lang/sid/internal/catalog"
	"github.com/saffron-lang/sid/internal/format"
	"github.com/saffron-lang/sid/internal/log"
	"github.com/saffron-lang/sid/internal/validate"
)

var lsCategory string

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List ingredients",
	Long:  `List all ingredients in the dataset, optionally filtered by category.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if lsCategory != "" && !slices.Contains(validate.Categories, lsCategory) {
			return PrintJSONError(fmt.Errorf("invalid category %q: must be one of %s",
				lsCategory, strings.Join(validate.Categories, ", ")))
		}

		c, err := loadCatalog()

		log.Event("cli:ls", "list").Path(lsCategory).Write(err)

		if err != nil {
			return PrintJSONError(err)
		}

		ings := c.All()
		if lsCategory != "" {
			ings = c.ByCategory(lsCategory)
		}

		if JSON() {
			if ings == nil {
				ings = []*catalog.Ingredient{}
			}
			return PrintJSON(ings)
		}
		format.Table(Out(), ings)
		return nil
	},
}

func init() {
	lsCmd.Flags().StringVarP(&lsCategory, "category", "c", "", "Filter by category")
	rootCmd.AddCommand(lsCmd)
}
