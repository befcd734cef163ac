// Package textutil lays out help text in fixed-width columns.
package textutil

import "strings"

// Wrap splits text into lines no longer than width, breaking on whitespace. A single word longer
// than width gets a line of its own. Returns nil for text without words.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Columns renders name in a left column of at least gutter characters followed by text wrapped to
// fit within width. Continuation lines are indented to the text column. A name that does not fit
// the gutter pushes the text column right by two spaces past the name.
func Columns(name, text string, gutter, width int) string {
	col := max(gutter, len(name)+2)
	lines := Wrap(text, max(width-col, 1))
	if len(lines) == 0 {
		return name
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteString(strings.Repeat(" ", col-len(name)))
	b.WriteString(lines[0])
	for _, line := range lines[1:] {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", col))
		b.WriteString(line)
	}
	return b.String()
}
