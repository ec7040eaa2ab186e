// Package converter turns an InfoWriter marker log into a condensed chapter list.
package converter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ccollicutt/infowriter-convert/pkg/output"
	"github.com/ccollicutt/infowriter-convert/pkg/parser"
)

// ErrInputNotFound is returned when the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// Recognized EVENT: subtypes, matched as case-sensitive substrings.
const (
	StartRecording   = "START RECORDING"
	StopRecording    = "STOP RECORDING"
	RecordingPaused  = "RECORDING PAUSED"
	RecordingResumed = "RECORDING RESUMED"
)

// MarkerKind classifies a marker line.
type MarkerKind string

const (
	KindRecordingBoundary MarkerKind = "recording_boundary" // START/STOP RECORDING
	KindPaused            MarkerKind = "paused"
	KindResumed           MarkerKind = "resumed"
	KindOtherEvent        MarkerKind = "other_event"
	KindHotkey            MarkerKind = "hotkey"
)

// ClassifyMarker returns the kind of a trimmed marker line.
// START/STOP take precedence over PAUSED, which takes precedence over RESUMED.
func ClassifyMarker(line parser.LogLine) MarkerKind {
	if line.IsHotkey() {
		return KindHotkey
	}

	switch c := line.Content; {
	case strings.Contains(c, StartRecording) || strings.Contains(c, StopRecording):
		return KindRecordingBoundary
	case strings.Contains(c, RecordingPaused):
		return KindPaused
	case strings.Contains(c, RecordingResumed):
		return KindResumed
	default:
		return KindOtherEvent
	}
}

// MarkerRecord is a marker line paired with the timestamp line that followed it.
type MarkerRecord struct {
	Marker        parser.LogLine
	TimestampLine parser.LogLine
	Timestamp     string
	Kind          MarkerKind
}

// Warning describes a record that was skipped or could not be fully parsed.
type Warning struct {
	// LineNum is the 1-based line the warning refers to.
	LineNum int

	// Message is the human-readable description.
	Message string
}

// String returns the warning as printed to the user.
func (w Warning) String() string {
	return "Warning: " + w.Message
}

func newWarning(lineNum int, format string, args ...any) Warning {
	return Warning{
		LineNum: lineNum,
		Message: fmt.Sprintf(format, args...),
	}
}

// Result holds the outcome of one conversion.
type Result struct {
	// Records are the output lines in input order.
	Records []output.Record

	// Warnings are the recoverable issues found during the scan.
	Warnings []Warning

	// LinesRead is the number of input lines.
	LinesRead int

	// MarkersSeen counts marker lines that had a parseable timestamp.
	MarkersSeen int
}

// HasWarnings returns true if any record was skipped or malformed.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
