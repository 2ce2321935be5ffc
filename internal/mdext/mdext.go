// Package mdext adds inline syntax to goldmark that the core Markdown
// grammar lacks: __underline__, ^superscript^ and ~subscript~.
package mdext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var (
	KindUnderline   = ast.NewNodeKind("Underline")
	KindSuperscript = ast.NewNodeKind("Superscript")
	KindSubscript   = ast.NewNodeKind("Subscript")
)

// Underline renders __text__ as <u>. It runs before emphasis, so double
// underscores no longer mean strong emphasis; ** still does.
var Underline goldmark.Extender = &delimited{
	char: '_', length: 2, tag: "u", kind: KindUnderline, priority: 400,
}

// Superscript renders ^text^ as <sup>.
var Superscript goldmark.Extender = &delimited{
	char: '^', length: 1, tag: "sup", kind: KindSuperscript, priority: 500,
}

// Subscript renders ~text~ as <sub>. A doubled tilde is left to the
// strikethrough extension.
var Subscript goldmark.Extender = &delimited{
	char: '~', length: 1, tag: "sub", kind: KindSubscript, priority: 400,
}

// span is the AST node produced by every delimited extension.
type span struct {
	ast.BaseInline
	kind ast.NodeKind
}

func (n *span) Kind() ast.NodeKind {
	return n.kind
}

func (n *span) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// delimited is a symmetric delimiter run of exactly length chars. It is its
// own inline parser, delimiter processor, renderer and extender.
type delimited struct {
	char     byte
	length   int
	tag      string
	kind     ast.NodeKind
	priority int
}

func (d *delimited) Trigger() []byte {
	return []byte{d.char}
}

func (d *delimited) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	before := block.PrecendingCharacter()
	line, segment := block.PeekLine()
	node := parser.ScanDelimiter(line, before, d.length, d)
	if node == nil || node.OriginalLength != d.length || before == rune(d.char) {
		return nil
	}
	node.Segment = segment.WithStop(segment.Start + node.OriginalLength)
	block.Advance(node.OriginalLength)
	pc.PushDelimiter(node)
	return node
}

func (d *delimited) IsDelimiter(b byte) bool {
	return b == d.char
}

func (d *delimited) CanOpenCloser(opener, closer *parser.Delimiter) bool {
	return opener.Char == closer.Char && opener.OriginalLength == closer.OriginalLength
}

func (d *delimited) OnMatch(consumes int) ast.Node {
	return &span{kind: d.kind}
}

func (d *delimited) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(d.kind, d.render)
}

func (d *delimited) render(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_ = w.WriteByte('<')
	} else {
		_, _ = w.WriteString("</")
	}
	_, _ = w.WriteString(d.tag)
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

func (d *delimited) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(util.Prioritized(d, d.priority)))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(util.Prioritized(d, 500)))
}
