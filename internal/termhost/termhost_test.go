package termhost

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/dgallion1/markwidget/markup"
	"github.com/dgallion1/markwidget/widget"
)

func text(s string) *widget.Rich[string] {
	return widget.Text[string](s, 16, widget.Font{})
}

func plain(e widget.Element[string], width int) string {
	return ansi.Strip(Render[string](e, width))
}

func TestRender_Widgets(t *testing.T) {
	tests := []struct {
		name  string
		elem  widget.Element[string]
		width int
		want  string
	}{
		{"rule", &widget.Rule{Thickness: 1}, 5, "─────"},
		{"checkbox", &widget.Checkbox{Checked: true}, 10, "[x]"},
		{"image", &widget.Image{URL: "a.png"}, 40, "[image: a.png]"},
		{
			"column",
			&widget.Column[string]{Children: []widget.Element[string]{text("a"), &widget.Rule{}}},
			3,
			"a\n───",
		},
		{
			"paragraph spacing",
			&widget.Column[string]{Children: []widget.Element[string]{text("one"), text("two")}, Spacing: 5},
			10,
			"one\n\ntwo",
		},
		{
			"centered",
			&widget.Column[string]{Children: []widget.Element[string]{text("ab")}, Fill: true, AlignX: widget.AlignCenter},
			6,
			"  ab",
		},
		{
			"wrapping row",
			&widget.Row[string]{Children: []widget.Element[string]{text("aaaa"), text("bbbb")}, Wrap: true},
			6,
			"aaaa\nbbbb",
		},
		{
			"row",
			&widget.Row[string]{Children: []widget.Element[string]{text("- "), text("item")}},
			20,
			"- item",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plain(tt.elem, tt.width); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRender_WrapsToWidth(t *testing.T) {
	tree := markup.Render(markup.FromHTML("<p>the quick brown fox jumps over the lazy dog</p>"), markup.Options[string]{})
	out := plain(tree, 12)
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 12 {
			t.Errorf("line %q is %d cells wide", line, w)
		}
	}
	if got := strings.Join(strings.Fields(out), " "); got != "the quick brown fox jumps over the lazy dog" {
		t.Errorf("expected every word kept in order, got %q", got)
	}
}

func TestRender_Details(t *testing.T) {
	s := markup.FromHTML("<details><summary>More</summary><p>Hidden body</p></details>")
	opts := markup.Options[markup.Change]{OnChange: func(c markup.Change) markup.Change { return c }}

	closed := ansi.Strip(Render[markup.Change](markup.Render(s, opts), 40))
	if !strings.HasPrefix(closed, "> More") {
		t.Errorf("expected closed indicator, got %q", closed)
	}
	if strings.Contains(closed, "Hidden body") {
		t.Errorf("expected body hidden, got %q", closed)
	}

	_ = s.Submit(markup.Change{Kind: markup.ChangeToggle, ID: 0, Open: true})
	s.Update()
	opened := ansi.Strip(Render[markup.Change](markup.Render(s, opts), 40))
	if !strings.HasPrefix(opened, "V More") {
		t.Errorf("expected open indicator, got %q", opened)
	}
	if !strings.Contains(opened, "Hidden body") {
		t.Errorf("expected body shown, got %q", opened)
	}
}

func TestRender_Blockquote(t *testing.T) {
	tree := markup.Render(markup.FromHTML("<blockquote>quoted</blockquote>"), markup.Options[string]{})
	if got := plain(tree, 20); got != "│quoted" {
		t.Errorf("expected a quote bar, got %q", got)
	}
}

func TestRender_Editor(t *testing.T) {
	s := markup.FromHTML("<pre><code>x := 1\n</code></pre>")
	opts := markup.Options[markup.Change]{OnChange: func(c markup.Change) markup.Change { return c }}

	out := ansi.Strip(Render[markup.Change](markup.Render(s, opts), 20))
	if !strings.Contains(out, "x := 1") {
		t.Errorf("expected code in output, got %q", out)
	}
	if !strings.HasPrefix(out, "┌") {
		t.Errorf("expected a bordered editor, got %q", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Errorf("expected border, code and border lines, got %d", len(lines))
	}
}

func TestRender_MinimumWidth(t *testing.T) {
	if got := plain(&widget.Rule{}, 0); got != "─" {
		t.Errorf("expected one-cell rule, got %q", got)
	}
}
