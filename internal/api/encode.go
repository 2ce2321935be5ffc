package api

import (
	"github.com/dgallion1/markwidget/widget"
)

// Node is the JSON form of a widget element. Only the fields relevant to
// Type are set.
type Node struct {
	Type     string               `json:"type"`
	Spans    []widget.Span[Event] `json:"spans,omitempty"`
	Children []*Node              `json:"children,omitempty"`
	Spacing  float32              `json:"spacing,omitempty"`
	Padding  *widget.Padding      `json:"padding,omitempty"`
	Align    string               `json:"align,omitempty"`
	Fill     bool                 `json:"fill,omitempty"`
	Wrap     bool                 `json:"wrap,omitempty"`
	OnPress  *Event               `json:"on_press,omitempty"`
	Style    string               `json:"style,omitempty"`

	Vertical  bool    `json:"vertical,omitempty"`
	Thickness float32 `json:"thickness,omitempty"`
	Width     float32 `json:"width,omitempty"`
	Height    float32 `json:"height,omitempty"`

	Label   string `json:"label,omitempty"`
	Checked bool   `json:"checked,omitempty"`

	URL         string   `json:"url,omitempty"`
	ImageWidth  *float32 `json:"image_width,omitempty"`
	ImageHeight *float32 `json:"image_height,omitempty"`

	Key      string       `json:"key,omitempty"`
	Text     string       `json:"text,omitempty"`
	Cursor   int          `json:"cursor,omitempty"`
	Anchor   int          `json:"anchor,omitempty"`
	Size     float32      `json:"size,omitempty"`
	Font     *widget.Font `json:"font,omitempty"`
	Editable bool         `json:"editable,omitempty"`
}

var alignNames = map[widget.Alignment]string{
	widget.AlignStart:  "",
	widget.AlignCenter: "center",
	widget.AlignEnd:    "end",
}

var buttonStyles = map[widget.ButtonStyle]string{
	widget.ButtonText:      "text",
	widget.ButtonSecondary: "secondary",
	widget.ButtonPrimary:   "primary",
}

// Encode converts a widget tree into its JSON form.
func Encode(e widget.Element[Event]) *Node {
	switch e := e.(type) {
	case *widget.Rich[Event]:
		return &Node{Type: "rich", Spans: e.Spans}
	case *widget.Row[Event]:
		return &Node{Type: "row", Children: encodeAll(e.Children), Spacing: e.Spacing, Wrap: e.Wrap}
	case *widget.Column[Event]:
		n := &Node{
			Type:     "column",
			Children: encodeAll(e.Children),
			Spacing:  e.Spacing,
			Align:    alignNames[e.AlignX],
			Fill:     e.Fill,
		}
		if e.Padding != (widget.Padding{}) {
			p := e.Padding
			n.Padding = &p
		}
		return n
	case *widget.Stack[Event]:
		return &Node{Type: "stack", Children: encodeAll(e.Layers)}
	case *widget.Button[Event]:
		n := &Node{
			Type:     "button",
			Children: encodeAll([]widget.Element[Event]{e.Content}),
			OnPress:  e.OnPress,
			Style:    buttonStyles[e.Style],
		}
		if e.Padding != (widget.Padding{}) {
			p := e.Padding
			n.Padding = &p
		}
		return n
	case *widget.MouseArea[Event]:
		return &Node{Type: "mouse_area", Children: encodeAll([]widget.Element[Event]{e.Content}), OnPress: e.OnPress}
	case *widget.Editor[Event]:
		font := e.Font
		return &Node{
			Type:     "editor",
			Key:      e.Key,
			Text:     e.Text,
			Cursor:   e.Cursor,
			Anchor:   e.Anchor,
			Size:     e.Size,
			Font:     &font,
			Editable: !e.ReadOnly(),
		}
	case *widget.Rule:
		return &Node{Type: "rule", Vertical: e.Vertical, Thickness: e.Thickness}
	case *widget.Space:
		return &Node{Type: "space", Width: e.Width, Height: e.Height, Fill: e.Fill}
	case *widget.Checkbox:
		return &Node{Type: "checkbox", Label: e.Label, Checked: e.Checked}
	case *widget.Image:
		return &Node{Type: "image", URL: e.URL, ImageWidth: e.Width, ImageHeight: e.Height}
	case nil:
		return &Node{Type: "column"}
	}
	return &Node{Type: "unknown"}
}

func encodeAll(elems []widget.Element[Event]) []*Node {
	out := make([]*Node, 0, len(elems))
	for _, e := range elems {
		if e == nil {
			continue
		}
		out = append(out, Encode(e))
	}
	return out
}
