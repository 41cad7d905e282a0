// ingredient.go implements the per-record rule set.
//
// Separated from batch.go so the rules can be exercised directly by unit
// tests and by the MCP server without touching the filesystem.
//
// Design: every rule runs; there is no short-circuiting. A record missing
// its id still gets its category and composition checked, so one run of
// the checker surfaces everything wrong with a file at once.

package validate

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// WarningPrefix marks soft issues. Callers filter on this literal prefix.
const WarningPrefix = "Warning"

// requiredFields lists the fields every ingredient record must carry,
// in reporting order.
var requiredFields = []string{"id", "name", "category", "composition", "physical"}

// Categories is the closed set of valid ingredient categories.
var Categories = []string{"protein", "fat", "carbohydrate", "liquid", "seasoning", "produce", "dairy"}

// percentFields are the composition fields constrained to [0,100].
var percentFields = []string{"water", "protein", "total_fat", "carbohydrates"}

var idPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Ingredient applies the full rule set to a parsed record and returns the
// ordered list of issues. Hard errors come from rules 1-5; rule 6 (missing
// citations) produces the single known warning.
func Ingredient(data map[string]any) []string {
	var issues []string

	for _, field := range requiredFields {
		if _, ok := data[field]; !ok {
			issues = append(issues, fmt.Sprintf("Missing required field: %s", field))
		}
	}

	if v, ok := data["id"]; ok {
		if s, ok := v.(string); !ok || !idPattern.MatchString(s) {
			issues = append(issues, fmt.Sprintf("Invalid ID format: %v (must match ^[a-z][a-z0-9_]*$)", v))
		}
	}

	if v, ok := data["name"]; ok {
		// A non-mapping name cannot carry an English entry either.
		if m, ok := v.(map[string]any); !ok || m["en"] == nil {
			issues = append(issues, "name.en is required")
		}
	}

	if v, ok := data["category"]; ok {
		if s, ok := v.(string); !ok || !slices.Contains(Categories, s) {
			issues = append(issues, fmt.Sprintf("Invalid category: %v. Must be one of: %s", v, strings.Join(Categories, ", ")))
		}
	}

	if comp, ok := data["composition"].(map[string]any); ok {
		for _, field := range percentFields {
			if v, ok := comp[field]; ok && !inRange(v, 0, 100) {
				issues = append(issues, fmt.Sprintf("composition.%s must be 0-100, got %s", field, formatValue(v)))
			}
		}
		if v, ok := comp["ph"]; ok && !inRange(v, 0, 14) {
			issues = append(issues, fmt.Sprintf("composition.ph must be 0-14, got %s", formatValue(v)))
		}
	}

	if !hasSources(data) {
		issues = append(issues, WarningPrefix+": No sources cited")
	}

	return issues
}

// IsWarning reports whether an issue is soft.
func IsWarning(issue string) bool {
	return strings.HasPrefix(issue, WarningPrefix)
}

// Split separates issues into hard errors and warnings, preserving order.
func Split(issues []string) (errs, warns []string) {
	for _, issue := range issues {
		if IsWarning(issue) {
			warns = append(warns, issue)
		} else {
			errs = append(errs, issue)
		}
	}
	return errs, warns
}

// inRange reports whether v is a number within [lo, hi]. Non-numeric
// values fail the range check rather than crashing the run.
func inRange(v any, lo, hi float64) bool {
	f, ok := v.(float64)
	return ok && f >= lo && f <= hi
}

// hasSources reports whether the record cites at least one source.
// A sources field of the wrong shape counts as uncited.
func hasSources(data map[string]any) bool {
	seq, ok := data["sources"].([]any)
	return ok && len(seq) > 0
}

// formatValue renders an offending value for an issue message. Numbers
// print without a trailing ".0" so whole values read as integers.
func formatValue(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}
