package extractor

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btraven00/pdflinks/internal/testutil"
)

func TestNewPDFExtractor(t *testing.T) {
	extractor := NewPDFExtractor(ExtractionOptions{})

	require.NotNil(t, extractor)
	assert.Equal(t, BackendNative, extractor.options.Backend)
	assert.NotNil(t, extractor.log)
}

func TestParseBackend(t *testing.T) {
	testCases := []struct {
		name     string
		expected Backend
		wantErr  bool
	}{
		{"", BackendNative, false},
		{"native", BackendNative, false},
		{"docconv", BackendDocconv, false},
		{"pdfcpu", "", true},
	}

	for _, tc := range testCases {
		backend, err := ParseBackend(tc.name)
		if tc.wantErr {
			assert.Error(t, err, tc.name)
			continue
		}

		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.expected, backend)
	}
}

func TestPagesMissingFile(t *testing.T) {
	extractor := NewPDFExtractor(DefaultExtractionOptions())

	_, err := extractor.ExtractFromFile(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestPagesMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))

	extractor := NewPDFExtractor(DefaultExtractionOptions())

	_, err := extractor.ExtractFromFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedPDF))
}

func TestPagesDirectory(t *testing.T) {
	extractor := NewPDFExtractor(DefaultExtractionOptions())

	_, err := extractor.ExtractFromFile(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedPDF))
}

func TestPagesTextAndAnnotations(t *testing.T) {
	path := testutil.WritePDF(t, t.TempDir(), "paper.pdf", []testutil.PageSpec{
		{Text: "Data at www.example.com/page and more"},
		{URIs: []string{"http://example.org/doc", "https://example.net/other"}},
		{Text: "Last page", URIs: []string{"https://example.com/last"}},
	})

	extractor := NewPDFExtractor(DefaultExtractionOptions())

	pages, err := extractor.ExtractFromFile(path)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	for i, page := range pages {
		assert.Equal(t, i+1, page.Number)
	}

	assert.Contains(t, pages[0].Text, "www.example.com/page")
	assert.Empty(t, pages[0].URIs())

	assert.Empty(t, strings.TrimSpace(pages[1].Text))
	assert.Equal(t, []string{"http://example.org/doc", "https://example.net/other"}, pages[1].URIs())
	require.Len(t, pages[1].Annotations, 2)
	assert.Equal(t, "Link", pages[1].Annotations[0].Subtype)

	assert.Contains(t, pages[2].Text, "Last page")
	assert.Equal(t, []string{"https://example.com/last"}, pages[2].URIs())
}

func TestPagesStopsWhenConsumerStops(t *testing.T) {
	path := testutil.WritePDF(t, t.TempDir(), "paper.pdf", []testutil.PageSpec{
		{Text: "one"},
		{Text: "two"},
		{Text: "three"},
	})

	extractor := NewPDFExtractor(DefaultExtractionOptions())

	seen := 0
	for _, err := range extractor.Pages(path) {
		require.NoError(t, err)

		seen++
		if seen == 2 {
			break
		}
	}

	assert.Equal(t, 2, seen)
}

func TestPageURIsSkipsAnnotationsWithoutURI(t *testing.T) {
	page := Page{Annotations: []Annotation{
		{Subtype: "Link", URI: "https://example.com/a"},
		{Subtype: "Text"},
	}}

	assert.Equal(t, []string{"https://example.com/a"}, page.URIs())
}
