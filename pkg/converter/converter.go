package converter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ccollicutt/infowriter-convert/pkg/output"
	"github.com/ccollicutt/infowriter-convert/pkg/parser"
)

// WarningFunc is called for every warning as soon as it is found.
type WarningFunc func(Warning)

// Converter scans marker logs and writes the condensed marker list.
type Converter struct {
	formatter *output.TextFormatter
	onWarning WarningFunc
}

// Option configures converter behavior.
type Option func(*Converter)

// WithWarningFunc reports warnings through fn.
func WithWarningFunc(fn WarningFunc) Option {
	return func(c *Converter) {
		c.onWarning = fn
	}
}

// WithFormatter replaces the output formatter.
func WithFormatter(f *output.TextFormatter) Option {
	return func(c *Converter) {
		c.formatter = f
	}
}

// New creates a converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		formatter: output.NewTextFormatter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert reads inputPath, scans it, and writes the records to outputPath.
// The output file is not touched if the input cannot be read.
func (c *Converter) Convert(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	lines, err := parser.ReadFile(ctx, inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	result, err := c.Scan(ctx, lines)
	if err != nil {
		return nil, err
	}

	if err := c.formatter.WriteFile(ctx, outputPath, result.Records); err != nil {
		return nil, err
	}

	return result, nil
}

// Scan walks the lines once and collects output records and warnings.
func (c *Converter) Scan(ctx context.Context, lines []parser.LogLine) (*Result, error) {
	result := &Result{
		Records:   []output.Record{},
		LinesRead: len(lines),
	}
	cur := newCursor(lines)

	for !cur.done() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := cur.current()
		if line.IsBlank() || !line.IsMarker() {
			cur.skip()
			continue
		}

		tsLine, ok := cur.peek()
		if !ok {
			c.warn(result, newWarning(line.LineNum(),
				"Found %s without timestamp on line %d", line.Content, line.LineNum()))
			cur.skip()
			continue
		}

		ts, err := parser.ExtractTimestamp(tsLine.Content)
		if err != nil {
			// Only the marker is consumed; the next line may itself be a marker.
			c.warn(result, newWarning(tsLine.LineNum(),
				"Could not parse timestamp from line %d: %s", tsLine.LineNum(), tsLine.Content))
			cur.skip()
			continue
		}

		rec := MarkerRecord{
			Marker:        line,
			TimestampLine: tsLine,
			Timestamp:     ts,
			Kind:          ClassifyMarker(line),
		}
		result.MarkersSeen++
		c.emit(result, rec)
		cur.consumeRecord()
	}

	return result, nil
}

func (c *Converter) emit(result *Result, rec MarkerRecord) {
	switch rec.Kind {
	case KindPaused:
		result.Records = append(result.Records, output.Record{Timestamp: rec.Timestamp, Label: RecordingPaused})
	case KindResumed:
		result.Records = append(result.Records, output.Record{Timestamp: rec.Timestamp, Label: RecordingResumed})
	case KindHotkey:
		key, err := parser.ExtractNoteKey(rec.Marker.Content)
		if err != nil {
			c.warn(result, newWarning(rec.Marker.LineNum(),
				"Could not parse note key from line %d: %s", rec.Marker.LineNum(), rec.Marker.Content))
			return
		}
		result.Records = append(result.Records, output.Record{Timestamp: rec.Timestamp, Label: key})
	case KindRecordingBoundary, KindOtherEvent:
		// No output. Unrecognized EVENT: subtypes are dropped without a warning.
	}
}

func (c *Converter) warn(result *Result, w Warning) {
	result.Warnings = append(result.Warnings, w)
	if c.onWarning != nil {
		c.onWarning(w)
	}
}

// Convert converts inputPath to outputPath with default options.
func Convert(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	return New().Convert(ctx, inputPath, outputPath)
}
