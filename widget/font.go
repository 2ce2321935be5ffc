package widget

import "fmt"

// Family selects the generic font family a host should resolve.
type Family uint8

const (
	FamilySans Family = iota
	FamilyMonospace
)

// Weight is the font weight.
type Weight uint8

const (
	WeightNormal Weight = iota
	WeightBold
)

// FontStyle is the font slant.
type FontStyle uint8

const (
	StyleNormal FontStyle = iota
	StyleItalic
)

// Font describes a font request. Name is an optional host font name; when
// empty the host picks one from Family.
type Font struct {
	Name   string    `json:"name,omitempty"`
	Family Family    `json:"family"`
	Weight Weight    `json:"weight"`
	Style  FontStyle `json:"style"`
}

// Bold returns f with a bold weight.
func (f Font) Bold() Font {
	f.Weight = WeightBold
	return f
}

// Italic returns f with an italic style.
func (f Font) Italic() Font {
	f.Style = StyleItalic
	return f
}

// Monospace is the default code font.
var Monospace = Font{Family: FamilyMonospace}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex formats c as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// DefaultHighlight is used for <mark> when no highlight color is configured.
var DefaultHighlight = RGB(255, 235, 59)
