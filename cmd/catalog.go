// catalog.go provides the shared dataset loader for the browsing commands.
//
// Separated so ls, show, search and stats all surface skipped-file notes
// the same way: on stderr, never mixed into the data being printed.

package cmd

import (
	"fmt"
	"os"

	"github.com/saffron-lang/sid/internal/catalog"
)

// loadCatalog loads the ingredient catalog, printing one stderr note per
// file that could not be loaded. Unparseable files are a validate concern;
// the browsing commands work with whatever loads.
func loadCatalog() (*catalog.Catalog, error) {
	dir, _, err := loadDataset()
	if err != nil {
		return nil, err
	}

	c, notes, err := catalog.Load(dir)
	if err != nil {
		return nil, err
	}
	for _, note := range notes {
		fmt.Fprintf(os.Stderr, "sid: %s\n", note)
	}
	return c, nil
}
