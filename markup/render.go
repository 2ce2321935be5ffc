package markup

import (
	"github.com/dgallion1/markwidget/widget"
)

// DefaultParagraphSpacing separates block rows when Options leaves it unset.
const DefaultParagraphSpacing = 5

// Style overrides host colours. Nil fields leave the host default.
type Style struct {
	TextColor      *widget.Color
	LinkColor      *widget.Color
	HighlightColor *widget.Color
}

// ImageInfo describes an img element handed to Options.OnImage. Width and
// Height are nil when the attribute is absent or not a number.
type ImageInfo struct {
	URL    string
	Width  *float32
	Height *float32
}

// Options configures one Render call. Every callback is optional; features
// whose callback is nil render without interaction.
type Options[M any] struct {
	// OnLink builds the message sent when a link is activated.
	OnLink func(url string) M
	// OnImage draws an image. Without it images are left out.
	OnImage func(ImageInfo) widget.Element[M]
	// OnCopy builds the message sent when a code snippet is clicked.
	OnCopy func(text string) M
	// OnChange wraps toggles and code edits. Without it collapsible sections
	// render fully expanded and code blocks are read-only.
	OnChange func(Change) M

	// LinkButtonStyle is used for links that wrap widgets, such as images.
	LinkButtonStyle widget.ButtonStyle
	// ParagraphSpacing separates block rows. Zero selects
	// DefaultParagraphSpacing; a negative value disables spacing.
	ParagraphSpacing float32

	Font     widget.Font
	FontBold widget.Font // defaults to Font.Bold()
	FontMono widget.Font // defaults to widget.Monospace

	Style Style
}

func (o Options[M]) withDefaults() Options[M] {
	switch {
	case o.ParagraphSpacing == 0:
		o.ParagraphSpacing = DefaultParagraphSpacing
	case o.ParagraphSpacing < 0:
		o.ParagraphSpacing = 0
	}
	if o.FontBold == (widget.Font{}) {
		o.FontBold = o.Font.Bold()
	}
	if o.FontMono == (widget.Font{}) {
		o.FontMono = widget.Monospace
	}
	return o
}

// Render converts the document held by s into a widget tree. It only reads
// s; the returned tree shares nothing with it.
func Render[M any](s *State, opts Options[M]) widget.Element[M] {
	r := &renderer[M]{state: s, opts: opts.withDefaults()}
	return r.traverse(s.Root(), Context{}).Element()
}

// renderer holds what one pass needs besides the formatting context.
type renderer[M any] struct {
	state *State
	opts  Options[M]
	// dropdown is the id handed to the next details element.
	dropdown int
}

func (r *renderer[M]) font(ctx Context) widget.Font {
	font := r.opts.Font
	switch {
	case ctx.Flags.Has(Monospace):
		font = r.opts.FontMono
		if ctx.Flags.Has(Bold) {
			font = font.Bold()
		}
	case ctx.Flags.Has(Bold):
		font = r.opts.FontBold
	}
	if ctx.Flags.Has(Italic) {
		font = font.Italic()
	}
	return font
}

// span styles text with the context.
func (r *renderer[M]) span(text string, ctx Context) widget.Span[M] {
	s := widget.Span[M]{
		Text:          text,
		Size:          ctx.TextSize(),
		Font:          r.font(ctx),
		Underline:     ctx.Flags.Has(Underline),
		Strikethrough: ctx.Flags.Has(Strikethrough),
		Color:         r.opts.Style.TextColor,
	}
	if ctx.Flags.Has(Highlight) {
		s.Highlight = r.opts.Style.HighlightColor
		if s.Highlight == nil {
			c := widget.DefaultHighlight
			s.Highlight = &c
		}
	}
	return s
}

// message calls fn and returns the result by pointer, or nil without fn.
func message[M, T any](fn func(T) M, arg T) *M {
	if fn == nil {
		return nil
	}
	m := fn(arg)
	return &m
}
