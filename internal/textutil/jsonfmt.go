// internal/textutil/jsonfmt.go
package textutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FormatJSON re-indents a JSON document. Invalid input is an error; the
// caller shows it instead of mutating the buffer.
func FormatJSON(content string, indent int) (string, error) {
	if indent <= 0 {
		indent = 2
	}
	var value interface{}
	if err := json.Unmarshal([]byte(content), &value); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", spaces(indent))
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	// Encoder appends a trailing newline; buffer content carries none.
	return trimTrailingNewline(buf.String()), nil
}

// MinifyJSON collapses a JSON document to its compact form.
func MinifyJSON(content string) (string, error) {
	var value interface{}
	if err := json.Unmarshal([]byte(content), &value); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	out, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func trimTrailingNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s[:len(s)-1]
	}
	return s
}
