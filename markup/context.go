package markup

import "github.com/dgallion1/markwidget/widget"

// Flags is the set of inherited style switches.
type Flags uint16

const (
	Bold Flags = 1 << iota
	Italic
	Underline
	Strikethrough
	Monospace
	KeepWhitespace
	Highlight
	// SkipSummary makes the next child walk drop the first <summary>.
	// It applies to one level only.
	SkipSummary
)

// Has reports whether every flag in x is set.
func (f Flags) Has(x Flags) bool {
	return f&x == x
}

// Align is an inherited block alignment.
type Align uint8

const (
	AlignNone Align = iota
	AlignCenter
	AlignRight
)

func (a Align) widget() widget.Alignment {
	switch a {
	case AlignCenter:
		return widget.AlignCenter
	case AlignRight:
		return widget.AlignEnd
	}
	return widget.AlignStart
}

// Context is the formatting inherited while walking down the tree. It is a
// value: every method returns a derived copy.
type Context struct {
	// Heading is 0 for body text, 1-6 for h1-h6 and 7 for sub/superscript.
	Heading int
	Flags   Flags
	Align   Align
	// Ordinal is the list number of the current item, 0 outside ordered lists.
	Ordinal int
}

const (
	bodySize     = 16
	scriptSize   = 10
	scriptWeight = 7
)

// WithHeading sets the heading tier.
func (c Context) WithHeading(weight int) Context {
	c.Heading = weight
	return c
}

// With adds flags.
func (c Context) With(f Flags) Context {
	c.Flags |= f
	return c
}

// Without clears flags.
func (c Context) Without(f Flags) Context {
	c.Flags &^= f
	return c
}

// Aligned sets the block alignment.
func (c Context) Aligned(a Align) Context {
	c.Align = a
	return c
}

// Ordered starts ordered numbering.
func (c Context) Ordered() Context {
	c.Ordinal = 1
	return c
}

// Unordered stops ordered numbering.
func (c Context) Unordered() Context {
	c.Ordinal = 0
	return c
}

// Nth positions the context on the n-th child (1-based). It is a no-op
// outside ordered lists.
func (c Context) Nth(n int) Context {
	if c.Ordinal > 0 {
		c.Ordinal = n
	}
	return c
}

// TextSize maps the heading tier onto a font size.
func (c Context) TextSize() float32 {
	switch {
	case c.Heading >= scriptWeight:
		return scriptSize
	case c.Heading > 0:
		return float32(36 - 4*c.Heading)
	}
	return bodySize
}
