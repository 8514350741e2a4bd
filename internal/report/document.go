package report

import (
	"fmt"
	"io"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

// Document is the subset of a word-processing document the report needs.
type Document interface {
	AddTitle(text string) error
	AddSection(text string) error
	AddParagraph(text string) error
	Write(w io.Writer) error
}

// DocumentFactory creates an empty Document.
type DocumentFactory func() (Document, error)

// docxDocument writes .docx files with godocx.
type docxDocument struct {
	root *docx.RootDoc
}

// NewDocx creates an empty .docx document from the godocx default template.
func NewDocx() (Document, error) {
	root, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("failed to create docx document: %w", err)
	}

	return &docxDocument{root: root}, nil
}

func (d *docxDocument) AddTitle(text string) error {
	_, err := d.root.AddHeading(text, 0)
	return err
}

func (d *docxDocument) AddSection(text string) error {
	_, err := d.root.AddHeading(text, 1)
	return err
}

func (d *docxDocument) AddParagraph(text string) error {
	d.root.AddParagraph(text)
	return nil
}

func (d *docxDocument) Write(w io.Writer) error {
	return d.root.Write(w)
}
