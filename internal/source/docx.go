package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
	"golang.org/x/net/html"
)

// DOCXLoader handles .docx files. Heading styles map onto h1-h6 and bold or
// italic runs keep their emphasis.
type DOCXLoader struct{}

func (l *DOCXLoader) Load(r io.Reader, filename string) (*Document, error) {
	tmp, size, err := spool(r, "markwidget-docx-*.docx")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	out := &Document{Title: baseTitle(filename)}
	var b strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		body := docxParagraphMarkup(para)
		if body == "" {
			continue
		}
		tag := "p"
		if level := docxHeadingLevel(para); level > 0 {
			tag = fmt.Sprintf("h%d", level)
			if level == 1 && out.Title == baseTitle(filename) {
				out.Title = textOf(para)
			}
		}
		fmt.Fprintf(&b, "<%s>%s</%s>\n", tag, body, tag)
	}
	out.Markup = b.String()
	return out, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if len(style) == len("heading1") && strings.HasPrefix(style, "heading") {
		if level := int(style[len(style)-1] - '0'); level >= 1 && level <= 6 {
			return level
		}
	}
	return 0
}

func docxParagraphMarkup(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		text := runText(run)
		if text == "" {
			continue
		}
		text = html.EscapeString(text)
		if props := run.RunProperties; props != nil {
			if props.Italic != nil {
				text = "<i>" + text + "</i>"
			}
			if props.Bold != nil {
				text = "<b>" + text + "</b>"
			}
		}
		buf.WriteString(text)
	}
	if strings.TrimSpace(buf.String()) == "" {
		return ""
	}
	return buf.String()
}

func runText(run *docx.Run) string {
	var buf strings.Builder
	for _, rc := range run.Children {
		if t, ok := rc.(*docx.Text); ok {
			buf.WriteString(t.Text)
		}
	}
	return buf.String()
}

func textOf(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		if run, ok := child.(*docx.Run); ok {
			buf.WriteString(runText(run))
		}
	}
	return strings.TrimSpace(buf.String())
}
