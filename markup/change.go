package markup

import (
	"errors"
	"fmt"

	"github.com/dgallion1/markwidget/widget"
)

// ErrQueueFull is returned by Submit when the pending queue has no room.
var ErrQueueFull = errors.New("change queue is full")

// ChangeKind identifies what a Change does to the document state.
type ChangeKind uint8

const (
	// ChangeToggle opens or closes a collapsible section.
	ChangeToggle ChangeKind = iota
	// ChangeEdit applies an editor action to a code block.
	ChangeEdit
)

var changeNames = [...]string{"toggle", "edit"}

func (k ChangeKind) String() string {
	if int(k) < len(changeNames) {
		return changeNames[k]
	}
	return fmt.Sprintf("ChangeKind(%d)", k)
}

func (k ChangeKind) MarshalText() ([]byte, error) {
	if int(k) >= len(changeNames) {
		return nil, fmt.Errorf("unknown change kind %d", k)
	}
	return []byte(changeNames[k]), nil
}

func (k *ChangeKind) UnmarshalText(b []byte) error {
	for i, name := range changeNames {
		if name == string(b) {
			*k = ChangeKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown change kind %q", b)
}

// Change is an interaction routed back from the visual tree into the State.
// Toggles use ID and Open; edits use Key and Action.
type Change struct {
	Kind   ChangeKind    `json:"kind"`
	ID     int           `json:"id,omitempty"`
	Open   bool          `json:"open,omitempty"`
	Key    string        `json:"key,omitempty"`
	Action widget.Action `json:"action,omitzero"`
}
