package widget

import (
	"encoding/json"
	"testing"
)

func TestContent_InsertAndBackspace(t *testing.T) {
	c := NewContent("fmt.Println()")
	c.Perform(Action{Kind: ActionMove, Motion: MotionDocumentEnd})
	c.Perform(Action{Kind: ActionMove, Motion: MotionLeft})
	c.Perform(Action{Kind: ActionInsert, Text: `"hi"`})

	if got, want := c.Text(), `fmt.Println("hi")`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if c.Cursor() != 16 {
		t.Errorf("expected cursor 16, got %d", c.Cursor())
	}

	c.Perform(Action{Kind: ActionBackspace})
	if got, want := c.Text(), `fmt.Println("hi)`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestContent_SelectionReplace(t *testing.T) {
	c := NewContent("hello world")
	c.Perform(Action{Kind: ActionClick, Position: 6})
	c.Perform(Action{Kind: ActionSelect, Motion: MotionLineEnd})

	if got := c.Selected(); got != "world" {
		t.Fatalf("expected selection %q, got %q", "world", got)
	}

	c.Perform(Action{Kind: ActionInsert, Text: "gophers"})
	if got := c.Text(); got != "hello gophers" {
		t.Errorf("expected %q, got %q", "hello gophers", got)
	}
	if start, end := c.Selection(); start != end {
		t.Errorf("expected collapsed selection, got %d..%d", start, end)
	}
}

func TestContent_Motions(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		motion Motion
		want   int
	}{
		{"left at start", 0, MotionLeft, 0},
		{"right", 0, MotionRight, 1},
		{"word right", 0, MotionWordRight, 3},
		{"word left", 8, MotionWordLeft, 4},
		{"line start", 10, MotionLineStart, 8},
		{"line end", 0, MotionLineEnd, 7},
		{"document end", 0, MotionDocumentEnd, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContent("one two\nsix")
			c.Perform(Action{Kind: ActionClick, Position: tt.start})
			c.Perform(Action{Kind: ActionMove, Motion: tt.motion})
			if c.Cursor() != tt.want {
				t.Errorf("expected cursor %d, got %d", tt.want, c.Cursor())
			}
		})
	}
}

func TestContent_ClickClamps(t *testing.T) {
	c := NewContent("abc")
	c.Perform(Action{Kind: ActionClick, Position: 99})
	if c.Cursor() != 3 {
		t.Errorf("expected cursor clamped to 3, got %d", c.Cursor())
	}
	c.Perform(Action{Kind: ActionDrag, Position: -4})
	if got := c.Selected(); got != "abc" {
		t.Errorf("expected drag selection %q, got %q", "abc", got)
	}
}

func TestContent_SelectAllDelete(t *testing.T) {
	c := NewContent("gone")
	c.Perform(Action{Kind: ActionSelectAll})
	c.Perform(Action{Kind: ActionDelete})
	if c.Text() != "" {
		t.Errorf("expected empty text, got %q", c.Text())
	}
}

func TestAction_JSON(t *testing.T) {
	var a Action
	if err := json.Unmarshal([]byte(`{"kind":"select","motion":"word_right"}`), &a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Kind != ActionSelect || a.Motion != MotionWordRight {
		t.Errorf("expected select/word_right, got %v/%d", a.Kind, a.Motion)
	}
	if a.IsEdit() {
		t.Error("expected select not to be an edit")
	}

	if err := json.Unmarshal([]byte(`{"kind":"explode"}`), &a); err == nil {
		t.Error("expected error for unknown action kind")
	}
}

func TestEditor_PerformWithoutHandler(t *testing.T) {
	e := NewEditor[string]("code-0", NewContent("x"), 16, Monospace, nil)
	if _, ok := e.Perform(Action{Kind: ActionSelectAll}); ok {
		t.Error("expected read-only editor to report false")
	}

	e = NewEditor("code-0", NewContent("x"), 16, Monospace, func(a Action) string { return a.Kind.String() })
	msg, ok := e.Perform(Action{Kind: ActionInsert, Text: "y"})
	if !ok || msg != "insert" {
		t.Errorf("expected message %q, got %q (ok=%v)", "insert", msg, ok)
	}
	if e.Text != "x" {
		t.Errorf("expected snapshot to stay %q, got %q", "x", e.Text)
	}
}
