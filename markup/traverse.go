package markup

import (
	"strconv"
	"strings"

	"github.com/dgallion1/markwidget/widget"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func (r *renderer[M]) traverse(n *html.Node, ctx Context) Unit[M] {
	switch n.Type {
	case html.DocumentNode:
		return r.children(n, ctx)
	case html.TextNode:
		return r.text(n, ctx)
	case html.ElementNode:
		return r.element(n, ctx)
	}
	return Unit[M]{}
}

func (r *renderer[M]) text(n *html.Node, ctx Context) Unit[M] {
	if ctx.Flags.Has(Monospace) {
		return r.codeblock(n, ctx)
	}
	text := n.Data
	if !ctx.Flags.Has(KeepWhitespace) {
		text = Collapse(text)
	}
	if text == "" {
		return Unit[M]{}
	}
	return Runs(r.span(text, ctx))
}

func (r *renderer[M]) element(n *html.Node, ctx Context) Unit[M] {
	block := isBlock(n)
	if block {
		if a, ok := alignment(n); ok {
			ctx = ctx.Aligned(a)
		}
	}
	u := r.tag(n, ctx)
	if !block || ctx.Align == AlignNone || u.IsEmpty() {
		return u
	}
	return r.aligned(u, ctx.Align)
}

func (r *renderer[M]) aligned(u Unit[M], a Align) Unit[M] {
	return Composite[M](&widget.Column[M]{
		Children: []widget.Element[M]{u.Element()},
		AlignX:   a.widget(),
		Fill:     true,
	})
}

func (r *renderer[M]) tag(n *html.Node, ctx Context) Unit[M] {
	switch a := n.DataAtom; a {
	case atom.Html, atom.Body, atom.P, atom.Div, atom.Span, atom.Kbd, atom.Summary:
		return r.children(n, ctx)
	case atom.Center:
		u := r.children(n, ctx.Aligned(AlignCenter))
		if u.IsEmpty() {
			return u
		}
		return r.aligned(u, AlignCenter)
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return r.children(n, ctx.WithHeading(headings[a]))
	case atom.Sub, atom.Sup:
		return r.children(n, ctx.WithHeading(scriptWeight))
	case atom.B, atom.Strong, atom.Em, atom.I, atom.U, atom.Ins, atom.Del, atom.S, atom.Strike,
		atom.Mark, atom.Code, atom.Pre:
		return r.children(n, ctx.With(styles[a]))
	case atom.Blockquote:
		inner := r.children(n, ctx)
		return Composite[M](&widget.Stack[M]{Layers: []widget.Element[M]{
			&widget.Row[M]{Children: []widget.Element[M]{&widget.Space{Width: 10}, inner.Element()}},
			&widget.Rule{Vertical: true, Thickness: 2},
		}})
	case atom.A:
		return r.link(n, ctx)
	case atom.Img:
		return r.image(n)
	case atom.Ul:
		return r.children(n, ctx.Unordered())
	case atom.Ol:
		return r.children(n, ctx.Ordered())
	case atom.Li:
		return r.listItem(n, ctx)
	case atom.Details:
		return r.details(n, ctx)
	case atom.Br:
		return Blank[M](&widget.Column[M]{})
	case atom.Hr:
		return Composite[M](&widget.Rule{Thickness: 4})
	case atom.Head, atom.Title, atom.Meta, atom.Script, atom.Style:
		r.dropdown += hiddenSections(n, nil)
		return Unit[M]{}
	case atom.Input:
		if typ, _ := attr(n, "type"); strings.EqualFold(typ, "checkbox") {
			_, checked := attr(n, "checked")
			return Composite[M](&widget.Checkbox{Checked: checked})
		}
	}
	return r.unsupported(n, ctx)
}

func (r *renderer[M]) unsupported(n *html.Node, ctx Context) Unit[M] {
	r.state.log.Debug("unsupported tag", "tag", n.Data)
	r.dropdown += hiddenSections(n, nil)
	return Runs(r.span("<"+n.Data+" (unsupported)>", ctx.With(Bold)))
}

// children renders the children of n and groups them: inline siblings share
// a row, and every block child gets a row of its own.
func (r *renderer[M]) children(n *html.Node, ctx Context) Unit[M] {
	skipSummary := ctx.Flags.Has(SkipSummary)
	ctx = ctx.Without(SkipSummary)

	var rows []Unit[M]
	var row Unit[M]
	pos := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode && blank(c.Data):
			continue
		case c.Type != html.TextNode && c.Type != html.ElementNode:
			continue
		case skipSummary && c.Type == html.ElementNode && c.DataAtom == atom.Summary:
			skipSummary = false
			continue
		}
		pos++
		u := r.traverse(c, ctx.Nth(pos))
		if isBlock(c) {
			rows = append(rows, row, u)
			row = Unit[M]{}
			continue
		}
		row = row.Join(u)
	}
	return r.stack(append(rows, row))
}

// stack drops empty rows and stacks the rest vertically.
func (r *renderer[M]) stack(rows []Unit[M]) Unit[M] {
	kept := rows[:0]
	for _, u := range rows {
		if !u.IsEmpty() {
			kept = append(kept, u)
		}
	}
	switch len(kept) {
	case 0:
		return Unit[M]{}
	case 1:
		return kept[0]
	}
	col := &widget.Column[M]{Spacing: r.opts.ParagraphSpacing, Children: make([]widget.Element[M], len(kept))}
	for i, u := range kept {
		col.Children[i] = u.Element()
	}
	return Composite[M](col)
}

func (r *renderer[M]) listItem(n *html.Node, ctx Context) Unit[M] {
	bullet := "- "
	if ctx.Ordinal > 0 {
		bullet = strconv.Itoa(ctx.Ordinal) + ". "
	}
	body := r.children(n, ctx)
	return Composite[M](&widget.Row[M]{Children: []widget.Element[M]{
		&widget.Rich[M]{Spans: []widget.Span[M]{r.span(bullet, Context{Heading: ctx.Heading})}},
		body.Element(),
	}})
}

func (r *renderer[M]) image(n *html.Node) Unit[M] {
	src, _ := attr(n, "src")
	if src == "" || r.opts.OnImage == nil {
		return Unit[M]{}
	}
	e := r.opts.OnImage(ImageInfo{URL: src, Width: dimension(n, "width"), Height: dimension(n, "height")})
	if e == nil {
		return Unit[M]{}
	}
	return Composite[M](e)
}

// dimension parses a numeric width or height, tolerating a px suffix.
func dimension(n *html.Node, key string) *float32 {
	v, ok := attr(n, key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 32)
	if err != nil {
		return nil
	}
	d := float32(f)
	return &d
}
