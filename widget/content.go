package widget

import (
	"fmt"
	"unicode"
)

// ActionKind identifies an editor interaction.
type ActionKind uint8

const (
	ActionMove ActionKind = iota
	ActionSelect
	ActionSelectAll
	ActionClick
	ActionDrag
	ActionInsert
	ActionBackspace
	ActionDelete
)

var actionNames = [...]string{"move", "select", "select_all", "click", "drag", "insert", "backspace", "delete"}

func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", k)
}

func (k ActionKind) MarshalText() ([]byte, error) {
	if int(k) >= len(actionNames) {
		return nil, fmt.Errorf("unknown action kind %d", k)
	}
	return []byte(actionNames[k]), nil
}

func (k *ActionKind) UnmarshalText(b []byte) error {
	for i, name := range actionNames {
		if name == string(b) {
			*k = ActionKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown action kind %q", b)
}

// Motion is a cursor movement used by ActionMove and ActionSelect.
type Motion uint8

const (
	MotionLeft Motion = iota
	MotionRight
	MotionWordLeft
	MotionWordRight
	MotionLineStart
	MotionLineEnd
	MotionDocumentStart
	MotionDocumentEnd
)

var motionNames = [...]string{"left", "right", "word_left", "word_right", "line_start", "line_end", "document_start", "document_end"}

func (m Motion) MarshalText() ([]byte, error) {
	if int(m) >= len(motionNames) {
		return nil, fmt.Errorf("unknown motion %d", m)
	}
	return []byte(motionNames[m]), nil
}

func (m *Motion) UnmarshalText(b []byte) error {
	for i, name := range motionNames {
		if name == string(b) {
			*m = Motion(i)
			return nil
		}
	}
	return fmt.Errorf("unknown motion %q", b)
}

// Action is one interaction with an editable text field. Position is a rune
// offset and is used by click and drag; Text is used by insert.
type Action struct {
	Kind     ActionKind `json:"kind"`
	Motion   Motion     `json:"motion,omitempty"`
	Position int        `json:"position,omitempty"`
	Text     string     `json:"text,omitempty"`
}

// IsEdit reports whether the action changes the text.
func (a Action) IsEdit() bool {
	switch a.Kind {
	case ActionInsert, ActionBackspace, ActionDelete:
		return true
	}
	return false
}

// Content is the editable text behind an Editor: a rune buffer with a cursor
// and a selection anchor. The selection is the range between the two; it is
// empty when they coincide.
type Content struct {
	text   []rune
	cursor int
	anchor int
}

// NewContent returns a content holding text with the cursor at the start.
func NewContent(text string) *Content {
	return &Content{text: []rune(text)}
}

// Text returns the current text.
func (c *Content) Text() string {
	return string(c.text)
}

// Cursor returns the cursor offset in runes.
func (c *Content) Cursor() int {
	return c.cursor
}

// Anchor returns the selection anchor offset in runes.
func (c *Content) Anchor() int {
	return c.anchor
}

// Selection returns the ordered selection bounds.
func (c *Content) Selection() (start, end int) {
	if c.anchor < c.cursor {
		return c.anchor, c.cursor
	}
	return c.cursor, c.anchor
}

// Selected returns the selected text.
func (c *Content) Selected() string {
	start, end := c.Selection()
	return string(c.text[start:end])
}

// Perform applies a to the content.
func (c *Content) Perform(a Action) {
	switch a.Kind {
	case ActionMove:
		start, end := c.Selection()
		switch {
		case start != end && a.Motion == MotionLeft:
			c.cursor = start
		case start != end && a.Motion == MotionRight:
			c.cursor = end
		default:
			c.cursor = c.motion(a.Motion)
		}
		c.anchor = c.cursor
	case ActionSelect:
		c.cursor = c.motion(a.Motion)
	case ActionSelectAll:
		c.anchor, c.cursor = 0, len(c.text)
	case ActionClick:
		c.cursor = c.clamp(a.Position)
		c.anchor = c.cursor
	case ActionDrag:
		c.cursor = c.clamp(a.Position)
	case ActionInsert:
		c.replace([]rune(a.Text))
	case ActionBackspace:
		if start, end := c.Selection(); start == end && start > 0 {
			c.anchor = start - 1
		}
		c.replace(nil)
	case ActionDelete:
		if start, end := c.Selection(); start == end && end < len(c.text) {
			c.anchor = end + 1
		}
		c.replace(nil)
	}
}

func (c *Content) replace(r []rune) {
	start, end := c.Selection()
	text := make([]rune, 0, len(c.text)-(end-start)+len(r))
	text = append(text, c.text[:start]...)
	text = append(text, r...)
	text = append(text, c.text[end:]...)
	c.text = text
	c.cursor = start + len(r)
	c.anchor = c.cursor
}

func (c *Content) clamp(pos int) int {
	return max(0, min(pos, len(c.text)))
}

func (c *Content) motion(m Motion) int {
	pos := c.cursor
	switch m {
	case MotionLeft:
		return c.clamp(pos - 1)
	case MotionRight:
		return c.clamp(pos + 1)
	case MotionWordLeft:
		for pos > 0 && unicode.IsSpace(c.text[pos-1]) {
			pos--
		}
		for pos > 0 && !unicode.IsSpace(c.text[pos-1]) {
			pos--
		}
		return pos
	case MotionWordRight:
		for pos < len(c.text) && unicode.IsSpace(c.text[pos]) {
			pos++
		}
		for pos < len(c.text) && !unicode.IsSpace(c.text[pos]) {
			pos++
		}
		return pos
	case MotionLineStart:
		for pos > 0 && c.text[pos-1] != '\n' {
			pos--
		}
		return pos
	case MotionLineEnd:
		for pos < len(c.text) && c.text[pos] != '\n' {
			pos++
		}
		return pos
	case MotionDocumentStart:
		return 0
	case MotionDocumentEnd:
		return len(c.text)
	}
	return pos
}

// Editor is an editable text field showing a snapshot of a Content.
type Editor[M any] struct {
	Key     string
	Text    string
	Cursor  int
	Anchor  int
	Size    float32
	Font    Font
	Padding Padding

	perform func(Action) M
}

// NewEditor snapshots c. Interactions are turned into messages by perform;
// they never touch c directly.
func NewEditor[M any](key string, c *Content, size float32, font Font, perform func(Action) M) *Editor[M] {
	return &Editor[M]{
		Key:     key,
		Text:    c.Text(),
		Cursor:  c.Cursor(),
		Anchor:  c.Anchor(),
		Size:    size,
		Font:    font,
		Padding: PadAll(5),
		perform: perform,
	}
}

// Perform returns the message for a. The second result is false when the
// editor is read-only.
func (e *Editor[M]) Perform(a Action) (M, bool) {
	if e.perform == nil {
		var zero M
		return zero, false
	}
	return e.perform(a), true
}

// ReadOnly reports whether the editor ignores interactions.
func (e *Editor[M]) ReadOnly() bool {
	return e.perform == nil
}
