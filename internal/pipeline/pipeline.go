// Package pipeline runs the extract, classify, count and report stages for a
// single PDF document.
package pipeline

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/btraven00/pdflinks/internal/extractor"
	"github.com/btraven00/pdflinks/internal/frequency"
	"github.com/btraven00/pdflinks/internal/links"
	"github.com/btraven00/pdflinks/internal/report"
)

const (
	DefaultInputPath  = "example.pdf"
	DefaultOutputPath = "example.docx"
)

// Config holds the inputs of one run.
type Config struct {
	InputPath  string
	OutputPath string
	Backend    extractor.Backend
	// Strict drops links that fail IsValidURL or IsValidDOI.
	Strict bool
	// SummaryTop prints the top entries to the console when positive.
	SummaryTop int
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		Backend:    extractor.BackendNative,
	}
}

// PageSource yields the pages of a PDF file.
type PageSource interface {
	Pages(filename string) iter.Seq2[extractor.Page, error]
}

// ReportWriter persists the frequency tables.
type ReportWriter interface {
	Write(path string, links, domains *frequency.Table) (report.Stats, error)
}

// Status describes how a run ended.
type Status string

const (
	StatusReportWritten Status = "report_written"
	StatusNoLinks       Status = "no_links"
	StatusMissingInput  Status = "missing_input"
)

// Result is the outcome of a run.
type Result struct {
	Status  Status           `json:"status"`
	Links   []links.Link     `json:"links,omitempty"`
	ByLink  *frequency.Table `json:"-"`
	Domains *frequency.Table `json:"-"`
	Stats   report.Stats     `json:"stats"`
	Pages   int              `json:"pages"`
}

// Runner executes the pipeline.
type Runner struct {
	Source     PageSource
	Report     ReportWriter
	Fs         afero.Fs
	Out        io.Writer
	Log        logrus.FieldLogger
	classifier *links.Classifier
	config     Config
}

// New wires a runner with the PDF extractor, the docx report writer and the
// operating system file system.
func New(config Config, log logrus.FieldLogger) *Runner {
	if log == nil {
		log = logrus.StandardLogger()
	}

	fs := afero.NewOsFs()

	return &Runner{
		config: config,
		Source: extractor.NewPDFExtractor(extractor.ExtractionOptions{
			Backend: config.Backend,
			Logger:  log,
		}),
		Report:     report.NewWriter(fs, report.NewDocx, log),
		Fs:         fs,
		Out:        os.Stdout,
		Log:        log,
		classifier: links.NewClassifier(),
	}
}

// Config returns the runner's configuration.
func (r *Runner) Config() Config {
	return r.config
}

// Collect reads every page and returns the links in page order. Within a page,
// text links precede annotation links.
func (r *Runner) Collect() ([]links.Link, int, error) {
	classifier := r.classifier
	if classifier == nil {
		classifier = links.NewClassifier()
	}

	var (
		found []links.Link
		pages int
	)

	for page, err := range r.Source.Pages(r.config.InputPath) {
		if err != nil {
			return nil, pages, err
		}

		pages++

		pageLinks := classifier.ExtractFromText(page.Text, page.Number)
		pageLinks = append(pageLinks, classifier.FromAnnotations(page.URIs(), page.Number)...)

		if r.config.Strict {
			pageLinks = r.filterStrict(pageLinks)
		}

		r.Log.WithFields(logrus.Fields{
			"page":  page.Number,
			"links": len(pageLinks),
		}).Debug("Scanned page")

		found = append(found, pageLinks...)
	}

	return found, pages, nil
}

func (r *Runner) filterStrict(candidates []links.Link) []links.Link {
	kept := candidates[:0]

	for _, link := range candidates {
		if !links.IsValid(link) {
			r.Log.WithFields(logrus.Fields{
				"url":  link.URL,
				"type": string(link.Type),
			}).Debug("Dropping link that fails validation")

			continue
		}

		kept = append(kept, link)
	}

	return kept
}

// Count builds the link and domain frequency tables.
func Count(found []links.Link) (byLink, byDomain *frequency.Table) {
	byLink = frequency.NewTable()
	byDomain = frequency.NewTable()

	for _, link := range found {
		byLink.Add(link.URL)
		byDomain.Add(links.ResolveDomain(link.URL))
	}

	return byLink, byDomain
}

// Run processes the configured PDF. A missing input and a PDF without links
// are reported on Out and are not errors.
func (r *Runner) Run() (*Result, error) {
	input := r.config.InputPath

	exists, err := afero.Exists(r.Fs, input)
	if err != nil {
		return nil, fmt.Errorf("failed to check PDF file '%s': %w", input, err)
	}

	if !exists {
		fmt.Fprintf(r.Out, "Error: PDF file '%s' not found.\n", input)
		return &Result{Status: StatusMissingInput}, nil
	}

	found, pages, err := r.Collect()
	if err != nil {
		return nil, fmt.Errorf("failed to extract links from '%s': %w", input, err)
	}

	result := &Result{Links: found, Pages: pages}

	if len(found) == 0 {
		fmt.Fprintf(r.Out, "No links found in the PDF: %s\n", input)

		result.Status = StatusNoLinks

		return result, nil
	}

	result.ByLink, result.Domains = Count(found)

	r.Log.WithFields(logrus.Fields{
		"pages":   pages,
		"links":   result.ByLink.Total(),
		"unique":  result.ByLink.Len(),
		"domains": result.Domains.Len(),
	}).Info("Extraction complete")

	stats, err := r.Report.Write(r.config.OutputPath, result.ByLink, result.Domains)
	if err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	result.Stats = stats
	result.Status = StatusReportWritten

	if r.config.SummaryTop > 0 {
		report.PrintSummary(r.Out, result.ByLink, result.Domains, r.config.SummaryTop)
	}

	fmt.Fprintf(r.Out, "Report generated: %s\n", r.config.OutputPath)

	return result, nil
}
