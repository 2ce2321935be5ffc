// Package termhost draws widget trees as terminal text.
//
// It is a small host for previews and debugging: containers become joined
// text blocks, links keep their underline, and anything that needs pixels
// (images, overlays) is approximated.
package termhost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dgallion1/markwidget/widget"
)

// cellPixels converts logical pixels to terminal cells.
const cellPixels = 10

// Render draws e in at most width columns.
func Render[M any](e widget.Element[M], width int) string {
	width = max(width, 1)
	lines := strings.Split(render[M](e, width, 0), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// render draws e in width columns. height is the number of lines a vertical
// rule should fill, or zero when nothing above constrains it.
func render[M any](e widget.Element[M], width, height int) string {
	switch e := e.(type) {
	case *widget.Rich[M]:
		return rich(e.Spans, width)
	case *widget.Row[M]:
		return row(e, width)
	case *widget.Column[M]:
		return column(e, width, height)
	case *widget.Stack[M]:
		return stack(e, width)
	case *widget.Button[M]:
		return pad(render[M](e.Content, max(width-cells(e.Padding.Left)-cells(e.Padding.Right), 1), height), e.Padding)
	case *widget.MouseArea[M]:
		return render[M](e.Content, width, height)
	case *widget.Editor[M]:
		return editor(e, width)
	case *widget.Rule:
		if e.Vertical {
			return strings.TrimSuffix(strings.Repeat("│\n", max(height, 1)), "\n")
		}
		return strings.Repeat("─", width)
	case *widget.Space:
		return strings.Repeat(" ", min(cells(e.Width), width))
	case *widget.Checkbox:
		mark := "[ ]"
		if e.Checked {
			mark = "[x]"
		}
		return strings.TrimRight(mark+" "+e.Label, " ")
	case *widget.Image:
		return imageStyle.Render("[image: " + e.URL + "]")
	}
	return ""
}

var (
	imageStyle  = lipgloss.NewStyle().Faint(true)
	editorStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
)

func cells(px float32) int {
	return int(px / cellPixels)
}

// gapLines is the number of blank lines for a vertical spacing. Any
// positive spacing is at least one line.
func gapLines(px float32) int {
	if px <= 0 {
		return 0
	}
	return max(cells(px), 1)
}

func rich[M any](spans []widget.Span[M], width int) string {
	var b strings.Builder
	for _, s := range spans {
		style, plain := spanStyle(s)
		if plain {
			b.WriteString(s.Text)
			continue
		}
		// Styles are applied per line so multi-line text is not padded.
		for i, part := range strings.Split(s.Text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if part != "" {
				b.WriteString(style.Render(part))
			}
		}
	}
	out := b.String()
	if lipgloss.Width(out) <= width {
		return out
	}
	return ansi.Wordwrap(out, width, "")
}

func spanStyle[M any](s widget.Span[M]) (lipgloss.Style, bool) {
	style := lipgloss.NewStyle()
	plain := true
	if s.Font.Weight == widget.WeightBold {
		style = style.Bold(true)
		plain = false
	}
	if s.Font.Style == widget.StyleItalic {
		style = style.Italic(true)
		plain = false
	}
	if s.Underline || s.Link != nil {
		style = style.Underline(true)
		plain = false
	}
	if s.Strikethrough {
		style = style.Strikethrough(true)
		plain = false
	}
	if s.Color != nil {
		style = style.Foreground(lipgloss.Color(s.Color.Hex()))
		plain = false
	}
	if s.Highlight != nil {
		style = style.Background(lipgloss.Color(s.Highlight.Hex()))
		plain = false
	}
	return style, plain
}

func row[M any](r *widget.Row[M], width int) string {
	gap := cells(r.Spacing)
	var (
		lines []string
		line  []string
		used  int
	)
	flush := func() {
		if len(line) > 0 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
		}
		line, used = nil, 0
	}
	for _, c := range r.Children {
		avail := width - used
		if used > 0 {
			avail -= gap
		}
		if used > 0 && avail < 1 {
			flush()
			avail = width
		}
		block := render[M](c, avail, 0)
		if r.Wrap && used > 0 && lipgloss.Width(block) > avail {
			flush()
			avail = width
			block = render[M](c, avail, 0)
		}
		if block == "" {
			continue
		}
		if used > 0 && gap > 0 {
			line = append(line, strings.Repeat(" ", gap))
			used += gap
		}
		line = append(line, block)
		used += lipgloss.Width(block)
	}
	flush()
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func column[M any](c *widget.Column[M], width, height int) string {
	inner := max(width-cells(c.Padding.Left)-cells(c.Padding.Right), 1)
	gap := gapLines(c.Spacing)

	blocks := make([]string, len(c.Children))
	used := cells(c.Padding.Top) + cells(c.Padding.Bottom)
	var fill []int
	for i, child := range c.Children {
		if r, ok := child.(*widget.Rule); ok && r.Vertical {
			fill = append(fill, i)
			continue
		}
		blocks[i] = render[M](child, inner, 0)
		used += lipgloss.Height(blocks[i])
	}
	if len(c.Children) > 1 {
		used += gap * (len(c.Children) - 1)
	}
	for _, i := range fill {
		blocks[i] = render[M](c.Children[i], inner, max(height-used, 1)/len(fill))
	}

	var parts []string
	for i, b := range blocks {
		if i > 0 {
			for range gap {
				parts = append(parts, "")
			}
		}
		if c.Fill {
			b = lipgloss.PlaceHorizontal(inner, position(c.AlignX), b)
		}
		parts = append(parts, b)
	}
	return pad(lipgloss.JoinVertical(lipgloss.Left, parts...), c.Padding)
}

func position(a widget.Alignment) lipgloss.Position {
	switch a {
	case widget.AlignCenter:
		return lipgloss.Center
	case widget.AlignEnd:
		return lipgloss.Right
	}
	return lipgloss.Left
}

func pad(s string, p widget.Padding) string {
	top, right, bottom, left := cells(p.Top), cells(p.Right), cells(p.Bottom), cells(p.Left)
	if top == 0 && right == 0 && bottom == 0 && left == 0 {
		return s
	}
	return lipgloss.NewStyle().Padding(top, right, bottom, left).Render(s)
}

// stack draws the first layer and paints the text of the others over its
// top-left corner. Layers that hold nothing but horizontal rules are drawn
// as an underline of the base.
func stack[M any](s *widget.Stack[M], width int) string {
	if len(s.Layers) == 0 {
		return ""
	}
	base := render[M](s.Layers[0], width, 0)
	lines := strings.Split(base, "\n")
	for _, layer := range s.Layers[1:] {
		if underline[M](layer) {
			for i, l := range lines {
				lines[i] = lipgloss.NewStyle().Underline(true).Render(l)
			}
			continue
		}
		over := strings.Split(render[M](layer, width, len(lines)), "\n")
		for i, o := range over {
			o = strings.TrimRight(o, " ")
			if i >= len(lines) || o == "" {
				continue
			}
			lines[i] = o + ansi.TruncateLeft(lines[i], ansi.StringWidth(o), "")
		}
	}
	return strings.Join(lines, "\n")
}

func underline[M any](e widget.Element[M]) bool {
	found := false
	clean := true
	widget.Walk[M](e, func(e widget.Element[M]) bool {
		switch e := e.(type) {
		case *widget.Rule:
			if e.Vertical {
				clean = false
			}
			found = true
		case *widget.Rich[M], *widget.Editor[M], *widget.Checkbox, *widget.Image:
			clean = false
		}
		return clean
	})
	return found && clean
}

func editor[M any](e *widget.Editor[M], width int) string {
	text := strings.TrimSuffix(e.Text, "\n")
	if width < 3 {
		return text
	}
	return editorStyle.Width(width - 2).Render(text)
}
