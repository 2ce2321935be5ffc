// Package widget defines the visual tree handed to host toolkits.
//
// The tree is made of owned nodes. A host walks it once per frame and maps
// every node onto its native widget. M is the host's message type; nodes that
// can be activated carry a *M that the host dispatches when the user
// interacts with them.
package widget

// Element is a node of the visual tree.
type Element[M any] interface {
	element()
}

// Alignment positions children along an axis.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// Padding is the inner spacing of a container, in logical pixels.
type Padding struct {
	Top, Right, Bottom, Left float32
}

// PadAll returns a uniform padding.
func PadAll(v float32) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// ButtonStyle selects how a host draws a button.
type ButtonStyle uint8

const (
	// ButtonText draws the button like plain text (no background).
	ButtonText ButtonStyle = iota
	// ButtonSecondary draws a subdued framed button.
	ButtonSecondary
	// ButtonPrimary draws the host's regular button.
	ButtonPrimary
)

// Span is a run of uniformly styled text inside a Rich element.
type Span[M any] struct {
	Text          string  `json:"text"`
	Size          float32 `json:"size"`
	Font          Font    `json:"font"`
	Underline     bool    `json:"underline,omitempty"`
	Strikethrough bool    `json:"strikethrough,omitempty"`
	Color         *Color  `json:"color,omitempty"`
	Highlight     *Color  `json:"highlight,omitempty"`
	// Link is dispatched when the span is clicked. Nil spans are inert.
	Link *M `json:"link,omitempty"`
}

// Rich is a paragraph of spans laid out in one text flow.
type Rich[M any] struct {
	Spans []Span[M]
}

// Row lays children out horizontally. Wrap lets a host move children that
// overflow onto the next line.
type Row[M any] struct {
	Children []Element[M]
	Spacing  float32
	Wrap     bool
}

// Column lays children out vertically. Fill requests the full available
// width, in which case AlignX positions the children.
type Column[M any] struct {
	Children []Element[M]
	Spacing  float32
	Padding  Padding
	AlignX   Alignment
	Fill     bool
}

// Stack draws its layers on top of each other, first layer at the bottom.
type Stack[M any] struct {
	Layers []Element[M]
}

// Button wraps content in a pressable area.
type Button[M any] struct {
	Content Element[M]
	OnPress *M
	Padding Padding
	Style   ButtonStyle
}

// MouseArea makes content clickable without any button chrome.
type MouseArea[M any] struct {
	Content Element[M]
	OnPress *M
}

// Rule is a divider line.
type Rule struct {
	Vertical  bool
	Thickness float32
}

// Space is empty room. Fill makes it take all remaining room on its axis.
type Space struct {
	Width, Height float32
	Fill          bool
}

// Checkbox is a read-only check mark.
type Checkbox struct {
	Label   string
	Checked bool
}

// Image asks the host to draw an already loaded image.
type Image struct {
	URL    string
	Width  *float32
	Height *float32
}

func (*Rich[M]) element()      {}
func (*Row[M]) element()       {}
func (*Column[M]) element()    {}
func (*Stack[M]) element()     {}
func (*Button[M]) element()    {}
func (*MouseArea[M]) element() {}
func (*Editor[M]) element()    {}
func (*Rule) element()         {}
func (*Space) element()        {}
func (*Checkbox) element()     {}
func (*Image) element()        {}

// Text returns a Rich element holding a single span.
func Text[M any](text string, size float32, font Font) *Rich[M] {
	return &Rich[M]{Spans: []Span[M]{{Text: text, Size: size, Font: font}}}
}

// Underline draws a thin rule below e.
func Underline[M any](e Element[M]) *Stack[M] {
	return &Stack[M]{Layers: []Element[M]{
		&Column[M]{Children: []Element[M]{e}},
		&Column[M]{Children: []Element[M]{
			&Space{Fill: true},
			&Rule{Thickness: 1},
			&Space{Height: 1},
		}},
	}}
}
