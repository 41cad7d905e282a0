// Package format provides output formatting for the catalog commands.
//
// Centralises presentation so command implementations focus on loading
// and querying while this package handles column alignment and detail
// rendering.
package format

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/saffron-lang/sid/internal/catalog"
)

// Table prints ingredients as an aligned table with a header row.
func Table(w io.Writer, ings []*catalog.Ingredient) {
	if len(ings) == 0 {
		fmt.Fprintln(w, "No ingredients")
		return
	}

	// Find max widths for alignment
	idW, catW := len("ID"), len("CATEGORY")
	for _, ing := range ings {
		if len(ing.ID) > idW {
			idW = len(ing.ID)
		}
		if len(ing.Category) > catW {
			catW = len(ing.Category)
		}
	}

	fmt.Fprintf(w, "%-*s  %-*s  %-7s  %s\n", idW, "ID", catW, "CATEGORY", "SOURCES", "NAME")
	for _, ing := range ings {
		fmt.Fprintf(w, "%-*s  %-*s  %7d  %s\n", idW, ing.ID, catW, ing.Category, len(ing.Sources), ing.Name.En)
	}
}

// Detail prints one ingredient in full.
func Detail(w io.Writer, ing *catalog.Ingredient) {
	fmt.Fprintf(w, "%s (%s)\n", ing.ID, ing.Name.En)
	fmt.Fprintf(w, "  File:      %s\n", ing.Path)
	fmt.Fprintf(w, "  Category:  %s\n", categoryLine(ing))

	if names := otherNames(ing.Name); names != "" {
		fmt.Fprintf(w, "  Names:     %s\n", names)
	}

	comp := ing.Composition
	fmt.Fprintf(w, "  Composition per 100g:\n")
	fmt.Fprintf(w, "    water %sg, protein %sg, fat %sg, carbohydrates %sg\n",
		num(comp.Water), num(comp.Protein), num(comp.TotalFat), num(comp.Carbohydrates))
	if comp.PH != nil {
		fmt.Fprintf(w, "    ph %s\n", num(*comp.PH))
	}

	if ing.Physical.DensityGPerML != nil {
		fmt.Fprintf(w, "  Density:   %s g/ml\n", num(*ing.Physical.DensityGPerML))
	}
	if len(ing.Allergens) > 0 {
		fmt.Fprintf(w, "  Allergens: %s\n", strings.Join(ing.Allergens, ", "))
	}
	if len(ing.Substitutes) > 0 {
		fmt.Fprintf(w, "  Substitutes: %s\n", strings.Join(ing.Substitutes, ", "))
	}

	if len(ing.Sources) == 0 {
		fmt.Fprintf(w, "  Sources:   none cited\n")
	} else {
		fmt.Fprintf(w, "  Sources:\n")
		for _, s := range ing.Sources {
			fmt.Fprintf(w, "    - %s\n", s)
		}
	}
}

// Stats prints the dataset summary with categories in alphabetical order.
func Stats(w io.Writer, s catalog.Stats) {
	fmt.Fprintf(w, "Ingredients: %d\n", s.Total)

	cats := make([]string, 0, len(s.Categories))
	catW := 0
	for c := range s.Categories {
		cats = append(cats, c)
		if len(c) > catW {
			catW = len(c)
		}
	}
	sort.Strings(cats)

	if len(cats) > 0 {
		fmt.Fprintln(w, "Categories:")
		for _, c := range cats {
			fmt.Fprintf(w, "  %-*s  %d\n", catW, c, s.Categories[c])
		}
	}

	fmt.Fprintf(w, "Sourced: %d of %d\n", s.Sourced, s.Total)
}

func categoryLine(ing *catalog.Ingredient) string {
	if ing.Subcategory != "" {
		return ing.Category + " / " + ing.Subcategory
	}
	return ing.Category
}

// otherNames joins the non-English locales as "es: ..., fr: ...".
func otherNames(n catalog.Name) string {
	var parts []string
	for _, loc := range []struct{ tag, name string }{
		{"es", n.Es}, {"fr", n.Fr}, {"zh", n.Zh}, {"ja", n.Ja},
	} {
		if loc.name != "" {
			parts = append(parts, loc.tag+": "+loc.name)
		}
	}
	return strings.Join(parts, ", ")
}

// num formats a float without a trailing ".0".
func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
