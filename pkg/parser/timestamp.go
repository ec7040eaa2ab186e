package parser

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// TimestampPattern captures the elapsed-time prefix of a timestamp line, e.g. "0:05:23".
	TimestampPattern = regexp.MustCompile(`^(\d+:\d{2}:\d{2})`)

	// HotkeyPattern captures the note key between "HOTKEY:" and the first "@".
	HotkeyPattern = regexp.MustCompile(`HOTKEY:([^@]+)@`)
)

var (
	ErrNoTimestamp = errors.New("timestamp pattern did not match")
	ErrNoNoteKey   = errors.New("note key pattern did not match")
)

// Extractor pulls the first capture group out of a line.
type Extractor struct {
	pattern *regexp.Regexp
	miss    error
}

// NewExtractor creates an extractor that returns miss when pattern does not match.
func NewExtractor(pattern *regexp.Regexp, miss error) *Extractor {
	return &Extractor{
		pattern: pattern,
		miss:    miss,
	}
}

// NewTimestampExtractor returns an extractor for timestamp lines.
func NewTimestampExtractor() *Extractor {
	return NewExtractor(TimestampPattern, ErrNoTimestamp)
}

// NewNoteKeyExtractor returns an extractor for HOTKEY: marker lines.
func NewNoteKeyExtractor() *Extractor {
	return NewExtractor(HotkeyPattern, ErrNoNoteKey)
}

// Extract returns the first capture group of the leftmost match, verbatim.
func (e *Extractor) Extract(line string) (string, error) {
	matches := e.pattern.FindStringSubmatch(line)
	if len(matches) < 2 {
		return "", e.miss
	}
	return matches[1], nil
}

// ExtractTimestamp returns the timestamp prefix of line.
func ExtractTimestamp(line string) (string, error) {
	return timestampExtractor.Extract(line)
}

// ExtractNoteKey returns the trimmed note key of a HOTKEY: line.
func ExtractNoteKey(line string) (string, error) {
	key, err := noteKeyExtractor.Extract(line)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(key), nil
}

var (
	timestampExtractor = NewTimestampExtractor()
	noteKeyExtractor   = NewNoteKeyExtractor()
)
