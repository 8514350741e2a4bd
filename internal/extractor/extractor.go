// Package extractor reads PDF documents page by page, yielding the plain text
// and the annotations of each page.
package extractor

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"

	"code.sajari.com/docconv/v2"
	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
)

// PDFExtractor reads pages from PDF files.
type PDFExtractor struct {
	log     logrus.FieldLogger
	options ExtractionOptions
}

// NewPDFExtractor creates a new PDF extractor.
func NewPDFExtractor(options ExtractionOptions) *PDFExtractor {
	if options.Backend == "" {
		options.Backend = BackendNative
	}

	log := options.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &PDFExtractor{
		options: options,
		log:     log.WithField("backend", string(options.Backend)),
	}
}

// Pages returns a lazy sequence of the pages in filename. Reading stops at the
// first error, which is yielded with a zero Page.
func (e *PDFExtractor) Pages(filename string) iter.Seq2[Page, error] {
	return func(yield func(Page, error) bool) {
		if err := checkReadable(filename); err != nil {
			yield(Page{}, err)
			return
		}

		switch e.options.Backend {
		case BackendDocconv:
			e.docconvPages(filename, yield)
		default:
			e.nativePages(filename, yield)
		}
	}
}

// ExtractFromFile reads every page of filename.
func (e *PDFExtractor) ExtractFromFile(filename string) ([]Page, error) {
	var pages []Page

	for page, err := range e.Pages(filename) {
		if err != nil {
			return nil, err
		}

		pages = append(pages, page)
	}

	return pages, nil
}

func checkReadable(filename string) error {
	info, err := os.Stat(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: '%s': %w", ErrFileNotFound, filename, err)
	}

	if err != nil {
		return fmt.Errorf("failed to stat PDF file '%s': %w", filename, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: '%s' is a directory", ErrMalformedPDF, filename)
	}

	return nil
}

func (e *PDFExtractor) nativePages(filename string, yield func(Page, error) bool) {
	f, r, err := openNative(filename)
	if err != nil {
		yield(Page{}, fmt.Errorf("%w: failed to open '%s': %w", ErrMalformedPDF, filename, err))
		return
	}
	defer f.Close()

	numPages := r.NumPage()
	e.log.WithField("pages", numPages).Debugf("Reading %s", filename)

	for i := 1; i <= numPages; i++ {
		page, err := e.readNativePage(r, i)
		if err != nil {
			yield(Page{}, fmt.Errorf("%w: page %d of '%s': %w", ErrMalformedPDF, i, filename, err))
			return
		}

		if !yield(page, nil) {
			return
		}
	}
}

// openNative wraps pdf.Open, which panics on some truncated files.
func openNative(filename string) (f *os.File, r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if f != nil {
				f.Close()
			}

			f, r, err = nil, nil, fmt.Errorf("%v", rec)
		}
	}()

	return pdf.Open(filename)
}

func (e *PDFExtractor) readNativePage(r *pdf.Reader, num int) (page Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()

	page.Number = num

	p := r.Page(num)
	if p.V.IsNull() {
		return page, nil
	}

	text, textErr := p.GetPlainText(nil)
	if textErr != nil {
		// Pages without decodable text still carry annotations.
		e.log.WithFields(logrus.Fields{
			"page": num,
			"err":  textErr.Error(),
		}).Debug("No extractable text on page")
	} else {
		page.Text = text
	}

	page.Annotations = pageAnnotations(p.V)

	return page, nil
}

// pageAnnotations reads /Annots, resolving the URI of link actions.
func pageAnnotations(v pdf.Value) []Annotation {
	annots := v.Key("Annots")

	var out []Annotation

	for i := 0; i < annots.Len(); i++ {
		annot := annots.Index(i)
		if annot.Kind() != pdf.Dict {
			continue
		}

		out = append(out, Annotation{
			Subtype: annot.Key("Subtype").Name(),
			URI:     annotationURI(annot),
		})
	}

	return out
}

func annotationURI(annot pdf.Value) string {
	uri := annot.Key("A").Key("URI")
	if uri.Kind() != pdf.String {
		return ""
	}

	return uri.Text()
}

func (e *PDFExtractor) docconvPages(filename string, yield func(Page, error) bool) {
	response, err := docconv.ConvertPath(filename)
	if err != nil {
		yield(Page{}, fmt.Errorf("%w: failed to convert PDF file '%s': %w", ErrMalformedPDF, filename, err))
		return
	}

	e.log.WithField("chars", len(response.Body)).Debugf("Converted %s", filename)

	yield(Page{Number: 1, Text: response.Body}, nil)
}
