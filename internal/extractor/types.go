package extractor

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	// ErrFileNotFound is returned when the PDF path does not exist.
	ErrFileNotFound = errors.New("pdf file not found")
	// ErrMalformedPDF is returned when the PDF cannot be parsed.
	ErrMalformedPDF = errors.New("malformed pdf")
)

// Page is the raw content of one PDF page.
type Page struct {
	Text        string       `json:"text,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Number      int          `json:"number"`
}

// Annotation is a page annotation. URI is empty unless the annotation
// carries a URI action.
type Annotation struct {
	Subtype string `json:"subtype,omitempty"`
	URI     string `json:"uri,omitempty"`
}

// URIs returns the URI of every annotation on the page that has one.
func (p Page) URIs() []string {
	var uris []string

	for _, annot := range p.Annotations {
		if annot.URI != "" {
			uris = append(uris, annot.URI)
		}
	}

	return uris
}

// Backend selects the PDF parsing library.
type Backend string

const (
	// BackendNative reads pages, text and annotations with ledongthuc/pdf.
	BackendNative Backend = "native"
	// BackendDocconv converts the whole document with docconv. It yields a
	// single page and no annotations.
	BackendDocconv Backend = "docconv"
)

// ExtractionOptions configures the PDF extractor.
type ExtractionOptions struct {
	Logger  logrus.FieldLogger
	Backend Backend
}

// DefaultExtractionOptions returns default extraction options.
func DefaultExtractionOptions() ExtractionOptions {
	return ExtractionOptions{
		Backend: BackendNative,
		Logger:  logrus.StandardLogger(),
	}
}

// ParseBackend validates a backend name. An empty name selects the native backend.
func ParseBackend(name string) (Backend, error) {
	switch Backend(name) {
	case "", BackendNative:
		return BackendNative, nil
	case BackendDocconv:
		return BackendDocconv, nil
	default:
		return "", fmt.Errorf("unsupported backend: %s", name)
	}
}
