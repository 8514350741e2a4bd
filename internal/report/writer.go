// Package report renders link and domain frequency tables into a document.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/btraven00/pdflinks/internal/frequency"
)

const (
	Title          = "PDF Link Frequency Analysis"
	SectionLinks   = "Links by Frequency"
	SectionDomains = "Domains by Frequency"

	previewLength = 50
)

// Stats summarizes what a Write emitted.
type Stats struct {
	Links   int `json:"links"`
	Domains int `json:"domains"`
	Skipped int `json:"skipped"`
}

// Writer renders frequency tables and saves them to a file system.
type Writer struct {
	fs     afero.Fs
	newDoc DocumentFactory
	log    logrus.FieldLogger
}

// NewWriter creates a report writer. A nil factory selects NewDocx and a nil
// logger the logrus standard logger.
func NewWriter(fs afero.Fs, newDoc DocumentFactory, log logrus.FieldLogger) *Writer {
	if newDoc == nil {
		newDoc = NewDocx
	}

	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Writer{fs: fs, newDoc: newDoc, log: log}
}

// FormatEntry renders one report line.
func FormatEntry(value string, count int) string {
	return fmt.Sprintf("%s: %d times", value, count)
}

// Write renders both tables and saves the document to path, creating parent
// directories and replacing any existing file. An entry that cannot be
// rendered is logged and skipped.
func (w *Writer) Write(path string, links, domains *frequency.Table) (Stats, error) {
	var stats Stats

	doc, err := w.newDoc()
	if err != nil {
		return stats, err
	}

	if err := doc.AddTitle(Title); err != nil {
		return stats, fmt.Errorf("failed to add title: %w", err)
	}

	if err := doc.AddSection(SectionLinks); err != nil {
		return stats, fmt.Errorf("failed to add section %q: %w", SectionLinks, err)
	}

	stats.Links, stats.Skipped = w.writeEntries(doc, "link", links)

	if err := doc.AddSection(SectionDomains); err != nil {
		return stats, fmt.Errorf("failed to add section %q: %w", SectionDomains, err)
	}

	var skipped int
	stats.Domains, skipped = w.writeEntries(doc, "domain", domains)
	stats.Skipped += skipped

	if err := w.save(doc, path); err != nil {
		return stats, err
	}

	return stats, nil
}

func (w *Writer) writeEntries(doc Document, kind string, table *frequency.Table) (written, skipped int) {
	if table == nil {
		return 0, 0
	}

	for _, entry := range table.MostCommon() {
		if strings.TrimSpace(entry.Key) == "" {
			continue
		}

		if err := addEntry(doc, entry); err != nil {
			w.log.WithFields(logrus.Fields{
				"kind":  kind,
				"value": truncate(entry.Key, previewLength),
				"err":   err.Error(),
			}).Warnf("Skipping problematic %s", kind)

			skipped++

			continue
		}

		written++
	}

	return written, skipped
}

// addEntry sanitizes and emits a single entry, turning a panic in the
// document library into an error for that entry alone.
func addEntry(doc Document, entry frequency.Entry) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrUnrenderable, rec)
		}
	}()

	value, err := Sanitize(entry.Key)
	if err != nil {
		return err
	}

	return doc.AddParagraph(FormatEntry(value, entry.Count))
}

func (w *Writer) save(doc Document, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory '%s': %w", dir, err)
		}
	}

	f, err := w.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file '%s': %w", path, err)
	}

	if err := doc.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report '%s': %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report '%s': %w", path, err)
	}

	return nil
}
