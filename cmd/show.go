// show.go implements the "sid show" command for displaying one ingredient.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saffron-lang/sid/internal/format"
	"github.com/saffron-lang/sid/internal/log"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one ingredient in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id := args[0]

		c, err := loadCatalog()
		if err == nil {
			if _, ok := c.Get(id); !ok {
				err = fmt.Errorf("ingredient not found: %s", id)
			}
		}

		log.Event("cli:show", "show").Path(id).Write(err)

		if err != nil {
			return PrintJSONError(err)
		}

		ing, _ := c.Get(id)
		if JSON() {
			return PrintJSON(ing)
		}
		format.Detail(Out(), ing)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
