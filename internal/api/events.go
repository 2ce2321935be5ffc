package api

import (
	"github.com/dgallion1/markwidget/internal/config"
	"github.com/dgallion1/markwidget/markup"
	"github.com/dgallion1/markwidget/widget"
)

// EventKind identifies what a client should do when it activates a node.
type EventKind string

const (
	EventLink   EventKind = "link"
	EventCopy   EventKind = "copy"
	EventChange EventKind = "change"
)

// Event is the message carried by interactive nodes of a served tree.
// Clients post Change back to the changes endpoint; links and copies are
// handled client-side.
type Event struct {
	Kind   EventKind      `json:"kind"`
	URL    string         `json:"url,omitempty"`
	Text   string         `json:"text,omitempty"`
	Change *markup.Change `json:"change,omitempty"`
}

func renderOptions(cfg config.Config) markup.Options[Event] {
	// Options treats zero as unset; the configured value is always explicit.
	spacing := float32(cfg.ParagraphSpacing)
	if spacing == 0 {
		spacing = -1
	}
	return markup.Options[Event]{
		OnLink: func(url string) Event {
			return Event{Kind: EventLink, URL: url}
		},
		OnCopy: func(text string) Event {
			return Event{Kind: EventCopy, Text: text}
		},
		OnChange: func(c markup.Change) Event {
			return Event{Kind: EventChange, Change: &c}
		},
		OnImage: func(img markup.ImageInfo) widget.Element[Event] {
			return &widget.Image{URL: img.URL, Width: img.Width, Height: img.Height}
		},
		LinkButtonStyle:  widget.ButtonText,
		ParagraphSpacing: spacing,
	}
}
