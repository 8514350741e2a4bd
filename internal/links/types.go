package links

import (
	"regexp"
)

// Link represents a single link occurrence found in a PDF document.
type Link struct {
	Raw  string   `json:"raw"`
	URL  string   `json:"url"`
	Type LinkType `json:"type"`
	Page int      `json:"page"`
}

// LinkType represents where a link came from and how it was matched.
type LinkType string

const (
	LinkTypeDOI        LinkType = "doi"
	LinkTypeURL        LinkType = "url"
	LinkTypeAnnotation LinkType = "annotation"
)

// ExtractionPattern defines how to find one kind of link in page text.
type ExtractionPattern struct {
	Regex       *regexp.Regexp
	Normalizer  func(string) string
	Reject      func(string) bool
	Name        string
	Type        LinkType
	Description string
	Examples    []string
	// MinLength is exclusive: a normalized match must be longer than this.
	MinLength int
}

const (
	// MinURLLength is the exclusive minimum length of generic and annotation links.
	MinURLLength = 10
	// MinDOILength is the exclusive minimum length of DOI links.
	MinDOILength = 30
)
