package source

import (
	"strings"
	"testing"
)

func TestTextLoader_BasicParagraphSplitting(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond <paragraph>.\n\nThird paragraph."
	l := &TextLoader{}
	doc, err := l.Load(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", doc.Title)
	}
	if doc.Markdown {
		t.Error("expected plain text to load as HTML")
	}

	want := "<p>First paragraph line one.<br>First paragraph line two.</p>\n" +
		"<p>Second &lt;paragraph&gt;.</p>\n" +
		"<p>Third paragraph.</p>\n"
	if doc.Markup != want {
		t.Errorf("expected %q, got %q", want, doc.Markup)
	}
}

func TestTextLoader_EmptyInput(t *testing.T) {
	l := &TextLoader{}
	doc, err := l.Load(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", doc.Title)
	}
	if doc.Markup != "" {
		t.Errorf("expected no markup for empty input, got %q", doc.Markup)
	}
}

func TestTextLoader_RendersLines(t *testing.T) {
	l := &TextLoader{}
	doc, err := l.Load(strings.NewReader("one\ntwo"), "lines.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := plain(doc); got != "onetwo" {
		t.Errorf("expected %q, got %q", "onetwo", got)
	}
}
