package links

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urlsOf(found []Link) []string {
	out := make([]string, 0, len(found))
	for _, link := range found {
		out = append(out, link.URL)
	}

	return out
}

func TestNewClassifier(t *testing.T) {
	c := NewClassifier()
	require.NotNil(t, c)

	patterns := c.Patterns()
	require.Len(t, patterns, 2)
	assert.Equal(t, LinkTypeDOI, patterns[0].Type)
	assert.Equal(t, LinkTypeURL, patterns[1].Type)

	for _, pattern := range patterns {
		for _, example := range pattern.Examples {
			assert.True(t, pattern.Regex.MatchString(example), "%s should match its example %q", pattern.Name, example)
		}
	}
}

func TestExtractFromText(t *testing.T) {
	c := NewClassifier()

	testCases := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "DOI with trailing period",
			text:     "Published as https://doi.org/10.1038/s41467-021-23778-6. More text",
			expected: []string{"https://doi.org/10.1038/s41467-021-23778-6"},
		},
		{
			name:     "short DOI is dropped",
			text:     "see https://doi.org/10.1234/ab for details",
			expected: nil,
		},
		{
			name:     "www gets a scheme",
			text:     "Visit www.example.com/page.",
			expected: []string{"https://www.example.com/page"},
		},
		{
			name:     "case insensitive scheme",
			text:     "HTTPS://Example.COM/Path here",
			expected: []string{"HTTPS://Example.COM/Path"},
		},
		{
			name:     "quote ends the link",
			text:     `href="https://example.com/a"`,
			expected: []string{"https://example.com/a"},
		},
		{
			name:     "angle brackets end the link",
			text:     "<https://example.com/a>",
			expected: []string{"https://example.com/a"},
		},
		{
			name:     "repeated links are kept",
			text:     "https://example.com/x and https://example.com/x",
			expected: []string{"https://example.com/x", "https://example.com/x"},
		},
		{
			name:     "DOI matches come before generic matches",
			text:     "https://example.com/first then https://doi.org/10.5281/zenodo.1234567",
			expected: []string{"https://doi.org/10.5281/zenodo.1234567", "https://example.com/first"},
		},
		{
			name: "non-breaking space ends both kinds of link",
			text: "see https://doi.org/10.1038/s41467-021-23778-6\u00a0and more https://example.com/page\u00a0next",
			expected: []string{
				"https://doi.org/10.1038/s41467-021-23778-6",
				"https://example.com/page",
			},
		},
		{
			name:     "thin space ends the link",
			text:     "https://example.com/a\u2009b and https://doi.org/10.5281/zenodo.1234567\u2009x",
			expected: []string{"https://doi.org/10.5281/zenodo.1234567", "https://example.com/a"},
		},
		{
			name:     "ideographic space and next line end the link",
			text:     "https://example.com/jp\u3000次 https://example.org/nel\u0085more",
			expected: []string{"https://example.com/jp", "https://example.org/nel"},
		},
		{
			name:     "no links",
			text:     "plain prose without any links at all",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			found := c.ExtractFromText(tc.text, 3)
			if tc.expected == nil {
				assert.Empty(t, found)
				return
			}

			assert.Equal(t, tc.expected, urlsOf(found))

			for _, link := range found {
				assert.Equal(t, 3, link.Page)
			}
		})
	}
}

func TestExtractFromTextTypes(t *testing.T) {
	c := NewClassifier()

	found := c.ExtractFromText("https://doi.org/10.1038/s41467-021-23778-6 www.example.org/x", 1)
	require.Len(t, found, 2)

	assert.Equal(t, LinkTypeDOI, found[0].Type)
	assert.Equal(t, LinkTypeURL, found[1].Type)
	assert.Equal(t, "www.example.org/x", found[1].Raw)
	assert.Equal(t, "https://www.example.org/x", found[1].URL)
}

func TestExtractFromTextLengthThresholds(t *testing.T) {
	c := NewClassifier()

	text := strings.Join([]string{
		"https://doi.org/10.1234/abcdefghijklmnop",
		"https://doi.org/10.1234/a",
		"http://a.io",
		"www.b.co",
		"https://example.com",
	}, " ")

	for _, link := range c.ExtractFromText(text, 1) {
		switch link.Type {
		case LinkTypeDOI:
			assert.Greater(t, utf8.RuneCountInString(link.URL), MinDOILength, link.URL)
		default:
			assert.Greater(t, utf8.RuneCountInString(link.URL), MinURLLength, link.URL)
			assert.NotContains(t, link.URL, "doi.org")
		}
	}
}

func TestFromAnnotations(t *testing.T) {
	c := NewClassifier()

	found := c.FromAnnotations([]string{
		"  http://example.org/doc  ",
		"",
		"   ",
		"http://a.b",
		"mailto:someone@example.com",
	}, 2)

	require.Len(t, found, 2)
	assert.Equal(t, "http://example.org/doc", found[0].URL)
	assert.Equal(t, LinkTypeAnnotation, found[0].Type)
	assert.Equal(t, 2, found[0].Page)

	// Annotation links are not pattern checked.
	assert.Equal(t, "mailto:someone@example.com", found[1].URL)
}
