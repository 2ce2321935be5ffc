package source

import (
	"strings"
	"testing"
)

func TestMarkdownLoader_TitleFromHeading(t *testing.T) {
	input := `Preamble.

# Title

Intro text.

## Section A
`
	l := &MarkdownLoader{}
	doc, err := l.Load(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Title" {
		t.Errorf("expected title %q, got %q", "Title", doc.Title)
	}
	if !doc.Markdown {
		t.Error("expected markdown flag")
	}
	if doc.Markup != input {
		t.Error("expected markup to keep the source text")
	}
}

func TestMarkdownLoader_TitleStripping(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
		{"dir/plain.md", "plain"},
	}
	l := &MarkdownLoader{}
	for _, tt := range tests {
		doc, err := l.Load(strings.NewReader("text"), tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if doc.Title != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, doc.Title)
		}
	}
}

func TestMarkdownLoader_State(t *testing.T) {
	l := &MarkdownLoader{}
	doc, err := l.Load(strings.NewReader("# API\n\n```\nGET /api/users\n```\n"), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := plain(doc)
	if !strings.Contains(got, "API") || !strings.Contains(got, "GET /api/users") {
		t.Errorf("expected heading and code in rendered text, got %q", got)
	}
}
