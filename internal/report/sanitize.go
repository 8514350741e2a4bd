package report

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrUnrenderable marks a value that cannot be placed in the report.
var ErrUnrenderable = errors.New("unrenderable entry")

// Sanitize makes s safe for the document body: control characters other than
// newline, carriage return and tab are removed, whitespace runs collapse to a
// single space, and the result is trimmed.
func Sanitize(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: invalid UTF-8", ErrUnrenderable)
	}

	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}

		return r
	}, s)

	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return "", fmt.Errorf("%w: empty after sanitizing", ErrUnrenderable)
	}

	return cleaned, nil
}

// truncate shortens s to at most n runes for diagnostics.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)

	return string(runes[:n]) + "..."
}
