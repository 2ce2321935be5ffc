package markup

import (
	"github.com/dgallion1/markwidget/widget"
	"golang.org/x/net/html"
)

// link renders an anchor. Text children keep their inline flow and get the
// link on every span; anything else is wrapped in a button.
func (r *renderer[M]) link(n *html.Node, ctx Context) Unit[M] {
	href, ok := attr(n, "href")
	if !ok {
		u := r.children(n, ctx.With(Underline))
		if _, runs := u.Spans(); runs || u.IsEmpty() {
			return u
		}
		return r.linkButton(u, nil)
	}

	u := r.children(n, ctx)
	if u.IsEmpty() {
		u = Runs(r.span(href, ctx))
	}
	msg := message(r.opts.OnLink, href)
	if _, runs := u.Spans(); !runs {
		return r.linkButton(u, msg)
	}
	return u.Map(func(s widget.Span[M]) widget.Span[M] {
		s.Underline = true
		s.Link = msg
		if r.opts.Style.LinkColor != nil {
			s.Color = r.opts.Style.LinkColor
		}
		return s
	})
}

func (r *renderer[M]) linkButton(u Unit[M], msg *M) Unit[M] {
	return Composite[M](&widget.Button[M]{
		Content: widget.Underline[M](u.Element()),
		OnPress: msg,
		Style:   r.opts.LinkButtonStyle,
	})
}
