package markup

import (
	"github.com/dgallion1/markwidget/widget"
	"golang.org/x/net/html"
)

// codeblock renders text inside code. Inside pre it is a block: an editor
// when the host accepts changes, otherwise a copy button. Outside pre it is
// an inline monospace span.
func (r *renderer[M]) codeblock(n *html.Node, ctx Context) Unit[M] {
	if !ctx.Flags.Has(KeepWhitespace) {
		text := Collapse(n.Data)
		if text == "" {
			return Unit[M]{}
		}
		s := r.span(text, ctx)
		s.Link = message(r.opts.OnCopy, text)
		return Runs(s)
	}

	text := n.Data
	key, keyed := r.state.CodeKey(n)
	if keyed {
		content, _ := r.state.Content(key)
		if onChange := r.opts.OnChange; onChange != nil {
			return Composite[M](widget.NewEditor(key, content, ctx.TextSize(), r.font(ctx), func(a widget.Action) M {
				return onChange(Change{Kind: ChangeEdit, Key: key, Action: a})
			}))
		}
		text = content.Text()
	}
	return Composite[M](&widget.Button[M]{
		Content: &widget.Rich[M]{Spans: []widget.Span[M]{r.span(text, ctx)}},
		OnPress: message(r.opts.OnCopy, text),
		Padding: widget.PadAll(2),
	})
}
