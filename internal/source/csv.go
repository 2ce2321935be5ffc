package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// CSVLoader handles CSV files. The first row names the columns; the rest are
// listed in batches under a heading giving their line numbers.
type CSVLoader struct{}

const csvBatchSize = 20

func (l *CSVLoader) Load(r io.Reader, filename string) (*Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &Document{Title: baseTitle(filename)}
	if len(records) == 0 {
		return doc, nil
	}

	headers := records[0]
	dataRows := records[1:]

	var b strings.Builder
	for i := 0; i < len(dataRows); i += csvBatchSize {
		end := min(i+csvBatchSize, len(dataRows))

		// 1-indexed, skip header
		fmt.Fprintf(&b, "<h3>Rows %d-%d</h3>\n<ul>\n", i+2, end+1)
		for _, row := range dataRows[i:end] {
			b.WriteString("<li>")
			for j, cell := range row {
				if j > 0 {
					b.WriteString(", ")
				}
				if j < len(headers) {
					b.WriteString("<b>" + html.EscapeString(headers[j]) + "</b>: ")
				}
				b.WriteString(html.EscapeString(cell))
			}
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n")
	}
	doc.Markup = b.String()
	return doc, nil
}
