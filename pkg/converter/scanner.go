package converter

import "github.com/ccollicutt/infowriter-convert/pkg/parser"

// cursor walks the input lines forward, one record at a time.
type cursor struct {
	lines []parser.LogLine
	pos   int
}

func newCursor(lines []parser.LogLine) *cursor {
	return &cursor{lines: lines}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.lines)
}

// current returns the line under the cursor. Callers check done first.
func (c *cursor) current() parser.LogLine {
	return c.lines[c.pos]
}

// peek returns the line after the cursor, if any.
func (c *cursor) peek() (parser.LogLine, bool) {
	if c.pos+1 >= len(c.lines) {
		return parser.LogLine{}, false
	}
	return c.lines[c.pos+1], true
}

// skip consumes a single line.
func (c *cursor) skip() {
	c.pos++
}

// consumeRecord consumes the marker and timestamp lines, then one blank line if present.
func (c *cursor) consumeRecord() {
	c.pos += 2
	if !c.done() && c.current().IsBlank() {
		c.pos++
	}
}
