// Package testutil builds small PDF documents for tests.
//
// Only the subset that github.com/ledongthuc/pdf reads is produced: one
// uncompressed content stream per page, a single Type1 font, plain Link
// annotations with URI actions and a classic xref table. There are no object
// streams, no filters and no embedded fonts.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// PageSpec describes one generated page: a single line of text and the URIs
// of link annotations placed on it.
type PageSpec struct {
	Text string
	URIs []string
}

// BuildPDF renders pages into a minimal, uncompressed PDF with a valid
// cross-reference table. Text is drawn in Helvetica with WinAnsiEncoding.
func BuildPDF(pages []PageSpec) []byte {
	var objects []string

	add := func(body string) int {
		objects = append(objects, body)
		return len(objects)
	}

	catalog := add("")
	pagesObj := add("")
	font := add("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	kids := make([]string, 0, len(pages))

	for _, page := range pages {
		content := "BT\n/F1 12 Tf\n72 720 Td\nET\n"
		if page.Text != "" {
			content = fmt.Sprintf("BT\n/F1 12 Tf\n72 720 Td\n(%s) Tj\nET\n", escapeString(page.Text))
		}

		contentObj := add(fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(content), content))

		annotRefs := make([]string, 0, len(page.URIs))
		for i, uri := range page.URIs {
			y := 700 - 20*i
			annot := add(fmt.Sprintf(
				"<< /Type /Annot /Subtype /Link /Rect [72 %d 300 %d] /Border [0 0 0] /A << /Type /Action /S /URI /URI (%s) >> >>",
				y, y+14, escapeString(uri)))
			annotRefs = append(annotRefs, fmt.Sprintf("%d 0 R", annot))
		}

		pageBody := fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R",
			pagesObj, font, contentObj)
		if len(annotRefs) > 0 {
			pageBody += " /Annots [" + strings.Join(annotRefs, " ") + "]"
		}

		kids = append(kids, fmt.Sprintf("%d 0 R", add(pageBody+" >>")))
	}

	objects[catalog-1] = fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesObj)
	objects[pagesObj-1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(kids))

	var buf bytes.Buffer

	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")

	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}

	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, catalog, xref)

	return buf.Bytes()
}

// WritePDF writes a generated PDF into dir and returns its path.
func WritePDF(t testing.TB, dir, name string, pages []PageSpec) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, BuildPDF(pages), 0o644); err != nil {
		t.Fatalf("failed to write test PDF: %v", err)
	}

	return path
}

func escapeString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
