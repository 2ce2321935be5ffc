package markup

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/markwidget/widget"
)

func identity(c Change) Change { return c }

// linkFor returns the message of the first span whose text is text.
func linkFor[M any](t *testing.T, e widget.Element[M], text string) M {
	t.Helper()
	for _, s := range spans[M](e) {
		if s.Text == text && s.Link != nil {
			return *s.Link
		}
	}
	t.Fatalf("no linked span %q", text)
	var zero M
	return zero
}

func TestState_ToggleRoundTrip(t *testing.T) {
	s := FromHTML("<details><summary>More</summary><p>Hidden body</p></details>")
	opts := Options[Change]{OnChange: identity}

	if open, known := s.Expanded(0); open || !known {
		t.Fatalf("expected section 0 known and collapsed, got open=%v known=%v", open, known)
	}

	closed := Render(s, opts)
	if strings.Contains(widget.PlainText[Change](closed), "Hidden body") {
		t.Fatal("expected collapsed body to be hidden")
	}

	toggle := linkFor[Change](t, closed, "More")
	if toggle.Kind != ChangeToggle || toggle.ID != 0 || !toggle.Open {
		t.Fatalf("expected toggle to open section 0, got %+v", toggle)
	}
	if err := s.Submit(toggle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Update()

	opened := Render(s, opts)
	if !strings.Contains(widget.PlainText[Change](opened), "Hidden body") {
		t.Fatal("expected expanded body to be shown")
	}

	toggle = linkFor[Change](t, opened, "More")
	if toggle.Open {
		t.Fatalf("expected second toggle to close, got %+v", toggle)
	}
	if err := s.Submit(toggle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Update()

	if strings.Contains(widget.PlainText[Change](Render(s, opts)), "Hidden body") {
		t.Error("expected body hidden again")
	}
}

func TestState_DropdownIDsStable(t *testing.T) {
	s := FromHTML(`<details><summary>a</summary><details><summary>b</summary>x</details></details>
<details><summary>c</summary>y</details>`)
	opts := Options[Change]{OnChange: identity}

	if got := s.Dropdowns(); got != 3 {
		t.Fatalf("expected 3 sections, got %d", got)
	}
	if got := linkFor[Change](t, Render(s, opts), "c").ID; got != 2 {
		t.Errorf("expected id 2 while the first section is closed, got %d", got)
	}

	_ = s.Submit(Change{Kind: ChangeToggle, ID: 0, Open: true})
	s.Update()
	tree := Render(s, opts)
	if got := linkFor[Change](t, tree, "b").ID; got != 1 {
		t.Errorf("expected nested id 1, got %d", got)
	}
	if got := linkFor[Change](t, tree, "c").ID; got != 2 {
		t.Errorf("expected id 2 while the first section is open, got %d", got)
	}
}

func TestState_DetailsFallback(t *testing.T) {
	got := Render(FromHTML("<details><summary>More</summary>body</details>"), Options[string]{})
	if text := widget.PlainText[string](got); text != "Morebody" {
		t.Errorf("expected header and body shown, got %q", text)
	}
	for _, s := range spans[string](got) {
		if s.Link != nil {
			t.Errorf("expected fallback to be inert, got link on %q", s.Text)
		}
	}
}

func TestState_EditorRoundTrip(t *testing.T) {
	s := FromHTML("<pre><code>x := 1</code></pre>")
	opts := Options[Change]{OnChange: identity}

	ed, ok := find[*widget.Editor[Change], Change](Render(s, opts))
	if !ok {
		t.Fatal("expected an editor for the code block")
	}
	if ed.Key != "code-0" || ed.Text != "x := 1" {
		t.Fatalf("unexpected editor %q: %q", ed.Key, ed.Text)
	}

	for _, a := range []widget.Action{
		{Kind: widget.ActionSelectAll},
		{Kind: widget.ActionInsert, Text: "y := 2"},
	} {
		msg, ok := ed.Perform(a)
		if !ok {
			t.Fatal("expected editable editor")
		}
		if msg.Kind != ChangeEdit || msg.Key != "code-0" {
			t.Fatalf("unexpected change %+v", msg)
		}
		if err := s.Submit(msg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if c, _ := s.Content("code-0"); c.Text() != "x := 1" {
		t.Fatalf("expected edits to wait for Update, got %q", c.Text())
	}
	s.Update()

	ed, _ = find[*widget.Editor[Change], Change](Render(s, opts))
	if ed.Text != "y := 2" {
		t.Errorf("expected edited text, got %q", ed.Text)
	}
	if got := s.Edits(); got != 1 {
		t.Errorf("expected select-all not counted as an edit, got %d edits", got)
	}
}

func TestState_IdenticalSnippetsDoNotAlias(t *testing.T) {
	s := FromHTML("<pre><code>same</code></pre><pre><code>same</code></pre>")

	a, okA := s.Content("code-0")
	b, okB := s.Content("code-1")
	if !okA || !okB {
		t.Fatal("expected one content per snippet")
	}
	if a == b {
		t.Fatal("expected distinct contents")
	}

	_ = s.Submit(Change{Kind: ChangeEdit, Key: "code-0", Action: widget.Action{Kind: widget.ActionInsert, Text: "!"}})
	s.Update()
	if b.Text() != "same" {
		t.Errorf("expected second snippet untouched, got %q", b.Text())
	}
}

func TestState_UpdateDropsStaleChanges(t *testing.T) {
	s := FromHTML("<p>no code here</p>")

	s.Update()
	_ = s.Submit(Change{Kind: ChangeEdit, Key: "code-9", Action: widget.Action{Kind: widget.ActionInsert, Text: "x"}})
	_ = s.Submit(Change{Kind: ChangeToggle, ID: 4, Open: true})
	s.Update()

	if _, known := s.Expanded(4); known {
		t.Error("expected unknown section to stay unknown")
	}
	if _, ok := s.Content("code-9"); ok {
		t.Error("expected no content to be created")
	}
}

func TestState_SubmitQueueFull(t *testing.T) {
	s := FromHTML("", WithQueueSize(1))

	if err := s.Submit(Change{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := s.Submit(Change{})
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}

	if got := s.Room(); got != 0 {
		t.Errorf("expected no room, got %d", got)
	}

	s.Update()
	if got := s.Room(); got != 1 {
		t.Errorf("expected room for 1 after Update, got %d", got)
	}
	if err := s.Submit(Change{}); err != nil {
		t.Errorf("expected room after Update, got %v", err)
	}
}

func TestState_FindImageLinks(t *testing.T) {
	s := FromHTML(`<img src="a.png"><p><img src="b.png"><img src=""><img></p><img src="a.png">`)

	links := s.FindImageLinks()
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d: %v", len(links), links)
	}
	for _, want := range []string{"a.png", "b.png"} {
		if _, ok := links[want]; !ok {
			t.Errorf("expected %q in %v", want, links)
		}
	}
}

func TestChangeKind_UnmarshalText(t *testing.T) {
	var k ChangeKind
	if err := k.UnmarshalText([]byte("edit")); err != nil || k != ChangeEdit {
		t.Errorf("expected edit, got %v (err=%v)", k, err)
	}
	if err := k.UnmarshalText([]byte("poke")); err == nil {
		t.Error("expected error for unknown kind")
	}
}
