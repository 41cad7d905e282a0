// Package canon defines the canonical on-disk formatting for data files.
//
// Canonical form is two-space JSON indentation with a trailing newline.
// Key order is preserved as written - reordering keys would churn every
// file in version control for no semantic gain.
package canon

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Indent returns the canonical form of a JSON document.
// Returns an error if the input is not valid JSON.
func Indent(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Formatted reports whether raw is already in canonical form.
func Formatted(raw []byte) (bool, error) {
	want, err := Indent(raw)
	if err != nil {
		return false, err
	}
	return bytes.Equal(raw, want), nil
}
