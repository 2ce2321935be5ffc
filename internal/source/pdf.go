package source

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
)

// PDFLoader handles PDF files. It tries the Go library first, then falls
// back to pdftotext if enabled. Each page becomes a heading followed by its
// text with layout whitespace kept.
type PDFLoader struct {
	FallbackPdftotext bool
}

func (l *PDFLoader) Load(r io.Reader, filename string) (*Document, error) {
	tmp, _, err := spool(r, "markwidget-pdf-*.pdf")
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	text, err := extractPDFText(tmpPath)
	if err != nil && l.FallbackPdftotext {
		text, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	return &Document{Title: baseTitle(filename), Markup: pagesMarkup(text)}, nil
}

// pagesMarkup turns form-feed separated page text into markup.
func pagesMarkup(text string) string {
	var b strings.Builder
	for i, page := range strings.Split(text, "\f") {
		page = strings.TrimSpace(page)
		if page == "" {
			continue
		}
		fmt.Fprintf(&b, "<h2>Page %d</h2>\n<pre>%s</pre>\n", i+1, html.EscapeString(page))
	}
	return b.String()
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return joinPages(reader.NumPage(), func(i int) (string, bool) {
		page := reader.Page(i)
		if page.V.IsNull() {
			return "", false
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", false
		}
		return text, true
	}), nil
}

// joinPages concatenates pages 1..n with form feeds. Unreadable pages stay
// as empty entries so later pages keep their numbers.
func joinPages(n int, page func(i int) (string, bool)) string {
	var buf strings.Builder
	for i := 1; i <= n; i++ {
		if i > 1 {
			buf.WriteString("\f")
		}
		if text, ok := page(i); ok {
			buf.WriteString(text)
		}
	}
	return buf.String()
}

func extractPdftotext(path string) (string, error) {
	out, err := exec.Command("pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
