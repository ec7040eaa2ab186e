// Package parser provides input reading and field extraction for InfoWriter marker logs.
package parser

import "strings"

// Marker prefixes that start a record.
const (
	EventPrefix  = "EVENT:"
	HotkeyPrefix = "HOTKEY:"
)

// LogLine is a single line of input text.
type LogLine struct {
	// Raw is the line as read, without its line terminator.
	Raw string

	// Content is Raw with leading and trailing whitespace removed.
	Content string

	// Index is the 0-based position of the line in the file.
	Index int
}

// NewLogLine builds a LogLine from raw text at the given 0-based index.
func NewLogLine(raw string, index int) LogLine {
	return LogLine{
		Raw:     raw,
		Content: strings.TrimSpace(raw),
		Index:   index,
	}
}

// LineNum returns the 1-based line number.
func (l LogLine) LineNum() int {
	return l.Index + 1
}

// IsBlank reports whether the line holds only whitespace.
func (l LogLine) IsBlank() bool {
	return l.Content == ""
}

// IsEvent reports whether the line is an EVENT: marker.
func (l LogLine) IsEvent() bool {
	return strings.HasPrefix(l.Content, EventPrefix)
}

// IsHotkey reports whether the line is a HOTKEY: marker.
func (l LogLine) IsHotkey() bool {
	return strings.HasPrefix(l.Content, HotkeyPrefix)
}

// IsMarker reports whether the line starts a record.
func (l LogLine) IsMarker() bool {
	return l.IsEvent() || l.IsHotkey()
}
