package markup

import (
	"bytes"
	"html"

	"github.com/dgallion1/markwidget/internal/mdext"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Linkify,
		extension.TaskList,
		extension.CJK,
		mdext.Underline,
		mdext.Superscript,
		mdext.Subscript,
	),
	// Embedded HTML is kept; the output feeds a widget tree, not a browser.
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

// FromMarkdown converts Markdown mixed with inline HTML and parses the result.
func FromMarkdown(input string, opts ...Option) *State {
	return FromHTML(MarkdownToHTML(input), opts...)
}

// MarkdownToHTML renders Markdown to HTML. If conversion fails the input is
// returned escaped inside a paragraph.
func MarkdownToHTML(input string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(input), &buf); err != nil {
		return "<p>" + html.EscapeString(input) + "</p>"
	}
	return buf.String()
}
