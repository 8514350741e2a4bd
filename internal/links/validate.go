package links

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var strictDOIRegex = regexp.MustCompile(`(?i)^https?://doi\.org/10\.` + unicodeDigit + `{4,}/[-.;()/` + unicodeWord + `]+[-` + unicodeWord + `]+$`)

// IsValidURL reports whether s splits into a URL with both a scheme and a
// network location.
func IsValidURL(s string) bool {
	parts, err := splitURL(s)
	if err != nil {
		return false
	}

	return parts.scheme != "" && parts.netloc != ""
}

// IsValidDOI reports whether s is a complete doi.org link.
func IsValidDOI(s string) bool {
	return strictDOIRegex.MatchString(s) && utf8.RuneCountInString(s) > MinDOILength
}

// IsValid applies the predicate matching the link's type.
func IsValid(link Link) bool {
	if link.Type == LinkTypeDOI {
		return IsValidDOI(link.URL)
	}

	return IsValidURL(link.URL)
}

// ResolveDomain returns the network location of link, userinfo and port
// included. Links without one fall back to the first path segment, and links
// that cannot be split are returned unchanged.
func ResolveDomain(link string) string {
	parts, err := splitURL(link)
	if err != nil {
		return link
	}

	if parts.netloc != "" {
		return parts.netloc
	}

	segment, _, _ := strings.Cut(parts.path, "/")

	return segment
}
