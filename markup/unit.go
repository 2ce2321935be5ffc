package markup

import "github.com/dgallion1/markwidget/widget"

type unitKind uint8

const (
	unitEmpty unitKind = iota
	unitRuns
	unitComposite
	unitRow
)

// Unit is the result of rendering one node: nothing, a run of text spans, a
// finished widget, or a wrapping row of those. Units are combined with Join
// while folding siblings. The zero Unit is empty.
type Unit[M any] struct {
	kind  unitKind
	runs  []widget.Span[M]
	elem  widget.Element[M]
	blank bool
	parts []Unit[M]
}

// Runs returns a text unit. No spans means an empty unit.
func Runs[M any](spans ...widget.Span[M]) Unit[M] {
	if len(spans) == 0 {
		return Unit[M]{}
	}
	return Unit[M]{kind: unitRuns, runs: spans}
}

// Composite wraps a finished widget.
func Composite[M any](e widget.Element[M]) Unit[M] {
	return Unit[M]{kind: unitComposite, elem: e}
}

// Blank wraps a widget that occupies a slot but shows nothing, such as the
// break produced by <br>. Blank units count as empty.
func Blank[M any](e widget.Element[M]) Unit[M] {
	return Unit[M]{kind: unitComposite, elem: e, blank: true}
}

// IsEmpty reports whether the unit would render nothing.
func (u Unit[M]) IsEmpty() bool {
	switch u.kind {
	case unitRuns:
		return len(u.runs) == 0
	case unitComposite:
		return u.blank
	case unitRow:
		for _, p := range u.parts {
			if !p.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// Spans returns the text spans of a pure text unit.
func (u Unit[M]) Spans() ([]widget.Span[M], bool) {
	if u.kind != unitRuns {
		return nil, false
	}
	return u.runs, true
}

// Join appends v after u. Empty units are the identity, text joins text by
// concatenation, and anything involving a widget becomes a wrapping row.
// Rows flatten, and text meeting text across a row seam is merged, so the
// grouping of a left-to-right fold does not matter.
func (u Unit[M]) Join(v Unit[M]) Unit[M] {
	switch {
	case u.kind == unitEmpty:
		return v
	case v.kind == unitEmpty:
		return u
	case u.kind == unitRuns && v.kind == unitRuns:
		spans := make([]widget.Span[M], 0, len(u.runs)+len(v.runs))
		spans = append(spans, u.runs...)
		return Unit[M]{kind: unitRuns, runs: append(spans, v.runs...)}
	}

	left, right := u.segments(), v.segments()
	parts := make([]Unit[M], 0, len(left)+len(right))
	parts = append(parts, left...)
	for _, p := range right {
		if last := len(parts) - 1; p.kind == unitRuns && parts[last].kind == unitRuns {
			parts[last] = parts[last].Join(p)
			continue
		}
		parts = append(parts, p)
	}
	return Unit[M]{kind: unitRow, parts: parts}
}

func (u Unit[M]) segments() []Unit[M] {
	if u.kind == unitRow {
		return u.parts
	}
	return []Unit[M]{u}
}

// Map rewrites every span of a text unit. Other units are returned as is.
func (u Unit[M]) Map(fn func(widget.Span[M]) widget.Span[M]) Unit[M] {
	if u.kind != unitRuns {
		return u
	}
	spans := make([]widget.Span[M], len(u.runs))
	for i, s := range u.runs {
		spans[i] = fn(s)
	}
	return Unit[M]{kind: unitRuns, runs: spans}
}

// Element finalises the unit into a widget.
func (u Unit[M]) Element() widget.Element[M] {
	switch u.kind {
	case unitRuns:
		return &widget.Rich[M]{Spans: u.runs}
	case unitComposite:
		return u.elem
	case unitRow:
		row := &widget.Row[M]{Wrap: true, Children: make([]widget.Element[M], len(u.parts))}
		for i, p := range u.parts {
			row.Children[i] = p.Element()
		}
		return row
	}
	return &widget.Column[M]{}
}
