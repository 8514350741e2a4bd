package links

import (
	"strings"
	"unicode/utf8"
)

// Classifier finds link-shaped substrings in page text and normalizes them.
type Classifier struct {
	patterns []ExtractionPattern
}

// NewClassifier creates a classifier with the default DOI and URL patterns.
func NewClassifier() *Classifier {
	return &Classifier{
		patterns: getExtractionPatterns(),
	}
}

// ExtractFromText returns every link occurrence in text. Each pattern scans the
// whole text independently, so repeated link text yields repeated links.
func (c *Classifier) ExtractFromText(text string, page int) []Link {
	if text == "" {
		return nil
	}

	var found []Link

	for _, pattern := range c.patterns {
		for _, match := range pattern.Regex.FindAllString(text, -1) {
			normalized := match
			if pattern.Normalizer != nil {
				normalized = pattern.Normalizer(match)
			}

			if pattern.Reject != nil && pattern.Reject(normalized) {
				continue
			}

			if utf8.RuneCountInString(normalized) <= pattern.MinLength {
				continue
			}

			found = append(found, Link{
				Raw:  match,
				URL:  normalized,
				Type: pattern.Type,
				Page: page,
			})
		}
	}

	return found
}

// FromAnnotations accepts annotation URIs as links without pattern validation.
// Blank and short URIs are dropped.
func (c *Classifier) FromAnnotations(uris []string, page int) []Link {
	var found []Link

	for _, raw := range uris {
		uri := strings.TrimSpace(raw)
		if utf8.RuneCountInString(uri) <= MinURLLength {
			continue
		}

		found = append(found, Link{
			Raw:  raw,
			URL:  uri,
			Type: LinkTypeAnnotation,
			Page: page,
		})
	}

	return found
}

// Patterns returns the patterns used by the classifier, in application order.
func (c *Classifier) Patterns() []ExtractionPattern {
	return c.patterns
}
