package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockTags force a new row in the enclosing column.
var blockTags = map[atom.Atom]bool{
	atom.Address:    true,
	atom.Article:    true,
	atom.Aside:      true,
	atom.Blockquote: true,
	atom.Canvas:     true,
	atom.Dd:         true,
	atom.Div:        true,
	atom.Dl:         true,
	atom.Dt:         true,
	atom.Fieldset:   true,
	atom.Figcaption: true,
	atom.Figure:     true,
	atom.Footer:     true,
	atom.Form:       true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Header:     true,
	atom.Hr:         true,
	atom.Li:         true,
	atom.Main:       true,
	atom.Nav:        true,
	atom.Noscript:   true,
	atom.Ol:         true,
	atom.P:          true,
	atom.Pre:        true,
	atom.Section:    true,
	atom.Table:      true,
	atom.Tfoot:      true,
	atom.Ul:         true,
	atom.Video:      true,
	atom.Br:         true,
	atom.Summary:    true,
}

// isBlock reports whether n starts its own row.
func isBlock(n *html.Node) bool {
	return n.Type == html.ElementNode && blockTags[n.DataAtom]
}

// headings maps h1..h6 onto heading tiers.
var headings = map[atom.Atom]int{
	atom.H1: 1,
	atom.H2: 2,
	atom.H3: 3,
	atom.H4: 4,
	atom.H5: 5,
	atom.H6: 6,
}

// styles maps inline formatting tags onto the flag they add.
var styles = map[atom.Atom]Flags{
	atom.B:      Bold,
	atom.Strong: Bold,
	atom.Em:     Italic,
	atom.I:      Italic,
	atom.U:      Underline,
	atom.Ins:    Underline,
	atom.Del:    Strikethrough,
	atom.S:      Strikethrough,
	atom.Strike: Strikethrough,
	atom.Mark:   Highlight,
	atom.Code:   Monospace,
	atom.Pre:    KeepWhitespace,
}

// attr returns the value of the named attribute.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// alignment reads the align attribute. The second result is false when the
// attribute is absent or not understood.
func alignment(n *html.Node) (Align, bool) {
	v, ok := attr(n, "align")
	if !ok {
		return AlignNone, false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "left":
		return AlignNone, true
	case "center", "centre":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	}
	return AlignNone, false
}
