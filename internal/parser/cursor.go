package parser

import "strings"

// cursor is a lazily-advancing view over the input's lines. All parse
// functions share one cursor instance and either peek without consuming or
// consume exactly one line at a time, so every line is consumed at most once
// across the whole parse.
type cursor struct {
	lines []string
	pos   int
}

// newCursor splits the input at newlines. A trailing newline terminates the
// last line rather than opening an empty one; a final line without a
// terminator is still a complete line.
func newCursor(input string) *cursor {
	lines := strings.Split(input, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return &cursor{lines: lines}
}

// peek returns the current line without consuming it.
func (c *cursor) peek() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	return c.lines[c.pos], true
}

// next consumes and returns the current line.
func (c *cursor) next() (string, bool) {
	line, ok := c.peek()
	if ok {
		c.pos++
	}
	return line, ok
}
