package output

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
)

// LineSeparator is the platform line terminator.
var LineSeparator = platformLineSeparator()

func platformLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// TextFormatter renders records as plain text, one per line.
type TextFormatter struct {
	newline string
}

// NewTextFormatter creates a formatter using the platform line separator.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{newline: LineSeparator}
}

// NewTextFormatterWithNewline creates a formatter using the given line separator.
func NewTextFormatterWithNewline(newline string) *TextFormatter {
	return &TextFormatter{newline: newline}
}

// Format writes every record followed by the line separator.
// Zero records produce no output.
func (f *TextFormatter) Format(ctx context.Context, records []Record, w io.Writer) error {
	for _, r := range records {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := fmt.Fprintf(w, "%s%s", r, f.newline); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile renders records and writes them to path in a single write,
// replacing any existing file.
func (f *TextFormatter) WriteFile(ctx context.Context, path string, records []Record) error {
	var buf bytes.Buffer
	if err := f.Format(ctx, records, &buf); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil { // #nosec G306 -- output is a plain text marker list
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
