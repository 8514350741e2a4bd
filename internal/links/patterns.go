package links

import (
	"regexp"
	"strings"
)

// Whitespace, digit and word classes follow Unicode, so a link ends at a
// non-breaking or thin space the same way it ends at an ASCII space.
const (
	unicodeSpace = `\s\v\x1c-\x1f\x{85}\p{Z}`
	unicodeDigit = `\p{Nd}`
	unicodeWord  = `\p{L}\p{N}_`
)

var (
	doiRegex = regexp.MustCompile(`(?i)https?://doi\.org/10\.` + unicodeDigit + `{4,}/[^"` + unicodeSpace + `]+`)
	urlRegex = regexp.MustCompile(`(?i)(?:https?://|www\.)[a-zA-Z0-9\-.]+\.[a-zA-Z]{2,}(?:/[^"<>` + unicodeSpace + `]*)?`)
)

// getExtractionPatterns returns the text patterns in the order they are applied to a page.
func getExtractionPatterns() []ExtractionPattern {
	return []ExtractionPattern{
		{
			Name:        "DOI URL",
			Regex:       doiRegex,
			Type:        LinkTypeDOI,
			Normalizer:  trimTrailingPeriods,
			MinLength:   MinDOILength,
			Description: "doi.org resolver links",
			Examples:    []string{"https://doi.org/10.1038/s41467-021-23778-6"},
		},
		{
			Name:        "Generic URL",
			Regex:       urlRegex,
			Type:        LinkTypeURL,
			Normalizer:  normalizeGenericURL,
			Reject:      isDOIResolverLink,
			MinLength:   MinURLLength,
			Description: "http(s) and www. links",
			Examples:    []string{"https://example.com/data", "www.example.com/page"},
		},
	}
}

func trimTrailingPeriods(s string) string {
	return strings.TrimRight(s, ".")
}

// normalizeGenericURL strips trailing periods and gives bare www. hosts a scheme.
func normalizeGenericURL(s string) string {
	s = trimTrailingPeriods(s)
	if strings.HasPrefix(s, "www.") {
		return "https://" + s
	}

	return s
}

// isDOIResolverLink reports links already covered by the DOI pattern.
func isDOIResolverLink(s string) bool {
	return strings.Contains(s, "doi.org")
}
