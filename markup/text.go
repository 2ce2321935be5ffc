package markup

import (
	"strings"
	"unicode"
)

// Collapse normalises a text run the way inline HTML text flows: internal
// whitespace becomes one space, and a single leading or trailing space is
// kept only when the original edge whitespace holds something other than a
// line break.
func Collapse(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if softSpace(s) {
			return " "
		}
		return ""
	}

	lead := s[:len(s)-len(strings.TrimLeftFunc(s, unicode.IsSpace))]
	trail := s[len(strings.TrimRightFunc(s, unicode.IsSpace)):]

	var b strings.Builder
	b.Grow(len(s))
	if softSpace(lead) {
		b.WriteByte(' ')
	}
	b.WriteString(strings.Join(fields, " "))
	if softSpace(trail) {
		b.WriteByte(' ')
	}
	return b.String()
}

// softSpace reports whether ws contains whitespace other than line breaks.
func softSpace(ws string) bool {
	return strings.ContainsFunc(ws, func(r rune) bool {
		return unicode.IsSpace(r) && r != '\n' && r != '\r'
	})
}

// blank reports whether s is whitespace only.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
