package markup

import (
	"github.com/dgallion1/markwidget/widget"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// details renders a collapsible section. Ids come from a counter shared by
// the whole pass; a closed body still consumes the ids of the sections it
// hides so that later ids do not move when it opens.
func (r *renderer[M]) details(n *html.Node, ctx Context) Unit[M] {
	id := r.dropdown
	r.dropdown++

	open, known := r.state.Expanded(id)
	if r.opts.OnChange == nil || !known {
		return r.detailsFallback(n, ctx)
	}

	summary := firstSummary(n)
	var header Unit[M]
	if summary != nil {
		header = r.traverse(summary, ctx)
	}
	if header.IsEmpty() {
		header = Runs(r.span("Details", ctx))
	}
	msg := r.opts.OnChange(Change{Kind: ChangeToggle, ID: id, Open: !open})
	if _, runs := header.Spans(); runs {
		header = header.Map(func(s widget.Span[M]) widget.Span[M] {
			s.Underline = true
			s.Link = &msg
			return s
		})
	} else {
		header = Composite[M](&widget.MouseArea[M]{Content: header.Element(), OnPress: &msg})
	}

	rows := []widget.Element[M]{header.Element()}
	if open {
		if body := r.children(n, ctx.With(SkipSummary)); !body.IsEmpty() {
			rows = append(rows, body.Element())
		}
	} else {
		r.dropdown += hiddenSections(n, summary)
	}

	return Composite[M](&widget.Stack[M]{Layers: []widget.Element[M]{
		&widget.Column[M]{Children: rows, Padding: widget.Padding{Left: 20, Bottom: 5}},
		indicator[M](open),
	}})
}

func indicator[M any](open bool) widget.Element[M] {
	if !open {
		return &widget.Column[M]{
			Children: []widget.Element[M]{widget.Text[M](">", 14, widget.Font{})},
			Spacing:  5,
			Padding:  widget.Padding{Left: 5},
		}
	}
	return &widget.Column[M]{
		Children: []widget.Element[M]{
			widget.Text[M]("V", 12, widget.Font{}),
			&widget.Rule{Vertical: true, Thickness: 1},
		},
		Spacing: 5,
		Padding: widget.Padding{Left: 5, Top: 5},
	}
}

// detailsFallback shows the whole section between two rules.
func (r *renderer[M]) detailsFallback(n *html.Node, ctx Context) Unit[M] {
	rows := []widget.Element[M]{&widget.Rule{Thickness: 1}}
	if body := r.children(n, ctx); !body.IsEmpty() {
		rows = append(rows, body.Element())
	}
	rows = append(rows, &widget.Rule{Thickness: 1})
	return Composite[M](&widget.Column[M]{Children: rows, Spacing: 10, Padding: widget.PadAll(10)})
}

func firstSummary(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Summary {
			return c
		}
	}
	return nil
}

// hiddenSections counts the details elements below n, outside skip.
func hiddenSections(n, skip *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c == skip {
			continue
		}
		if c.Type == html.ElementNode && c.DataAtom == atom.Details {
			count++
		}
		count += hiddenSections(c, nil)
	}
	return count
}
