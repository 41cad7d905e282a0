// batch.go implements the batch checker that walks the data directory.
//
// Separated from ingredient.go to keep filesystem traversal and per-file
// classification apart from the rule set itself. Presentation lives in
// internal/report; this file only produces results.
//
// Design: one bad file never aborts the batch. Parse failures and
// oversized files are recorded as failed results and the walk continues.
// Files are processed in lexicographic path order so output is
// deterministic across platforms.

package validate

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Status classifies a checked file.
const (
	StatusPass = "PASS"
	StatusWarn = "WARN"
	StatusFail = "FAIL"
)

// FileResult is the outcome of checking a single data file.
type FileResult struct {
	Path     string   `json:"path"`               // relative path, slash-separated
	Name     string   `json:"name,omitempty"`     // English name, "unknown" when absent
	Status   string   `json:"status"`             // PASS, WARN or FAIL
	Errors   []string `json:"errors,omitempty"`   // hard rule violations
	Warnings []string `json:"warnings,omitempty"` // soft issues
	// ParseError is set when the file never reached the rule set.
	ParseError string `json:"parse_error,omitempty"`
}

// Summary accumulates counts across a batch run.
//
// Passed counts every file with zero hard errors - warned files included.
// Warned counts files that passed with at least one warning. The two
// buckets overlap on purpose; the report prints them that way.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
	Warned int `json:"warnings"`
}

// Run checks every *.json file under dataDir and returns per-file results
// in sorted path order plus the accumulated summary.
//
// Result paths are reported relative to the parent of dataDir, so the
// default layout prints as "data/beef.json". maxFileSize guards the
// parser; 0 disables the guard. A missing dataDir returns ErrNoDataDir.
func Run(dataDir string, maxFileSize int64) ([]FileResult, Summary, error) {
	info, err := os.Stat(dataDir)
	if err != nil || !info.IsDir() {
		return nil, Summary{}, fmt.Errorf("%w: %s", ErrNoDataDir, dataDir)
	}

	base := filepath.Dir(filepath.Clean(dataDir))

	var paths []string
	err = filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, Summary{}, fmt.Errorf("walking %s: %w", dataDir, err)
	}
	sort.Strings(paths)

	var results []FileResult
	var sum Summary
	for _, path := range paths {
		r := checkFile(path, base, maxFileSize)
		sum.Total++
		switch r.Status {
		case StatusFail:
			sum.Failed++
		case StatusWarn:
			sum.Warned++
			sum.Passed++
		default:
			sum.Passed++
		}
		results = append(results, r)
	}
	return results, sum, nil
}

// checkFile parses and validates one data file.
func checkFile(path, base string, maxFileSize int64) FileResult {
	rel := relPath(path, base)

	raw, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: rel, Status: StatusFail, ParseError: fmt.Sprintf("Unreadable file - %v", err)}
	}
	if maxFileSize > 0 && int64(len(raw)) > maxFileSize {
		return FileResult{Path: rel, Status: StatusFail,
			ParseError: fmt.Sprintf("File too large - %d bytes (limit %d)", len(raw), maxFileSize)}
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return FileResult{Path: rel, Status: StatusFail, ParseError: fmt.Sprintf("Invalid JSON - %v", err)}
	}

	errs, warns := Split(Ingredient(data))
	r := FileResult{Path: rel, Name: englishName(data), Errors: errs, Warnings: warns}
	switch {
	case len(errs) > 0:
		r.Status = StatusFail
	case len(warns) > 0:
		r.Status = StatusWarn
	default:
		r.Status = StatusPass
	}
	return r
}

// englishName extracts the record's English name for display, falling
// back to "unknown" when the name mapping or its en entry is absent.
func englishName(data map[string]any) string {
	if m, ok := data["name"].(map[string]any); ok {
		if s, ok := m["en"].(string); ok {
			return s
		}
	}
	return "unknown"
}

// relPath renders path relative to base with forward slashes.
func relPath(path, base string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}
