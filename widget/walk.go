package widget

import "strings"

// Children returns the direct children of e.
func Children[M any](e Element[M]) []Element[M] {
	switch e := e.(type) {
	case *Row[M]:
		return e.Children
	case *Column[M]:
		return e.Children
	case *Stack[M]:
		return e.Layers
	case *Button[M]:
		return []Element[M]{e.Content}
	case *MouseArea[M]:
		return []Element[M]{e.Content}
	}
	return nil
}

// Walk visits e and its descendants depth first. Returning false from fn
// skips the children of the visited element.
func Walk[M any](e Element[M], fn func(Element[M]) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, c := range Children[M](e) {
		Walk[M](c, fn)
	}
}

// PlainText concatenates the text of every span and editor under e.
func PlainText[M any](e Element[M]) string {
	var b strings.Builder
	Walk[M](e, func(e Element[M]) bool {
		switch e := e.(type) {
		case *Rich[M]:
			for _, s := range e.Spans {
				b.WriteString(s.Text)
			}
		case *Editor[M]:
			b.WriteString(e.Text)
		}
		return true
	})
	return b.String()
}
