package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// utf8BOM is stripped from the start of the first line.
const utf8BOM = "\ufeff"

// ReadFile reads every line of the file at path into memory.
// Open errors are returned unwrapped so callers can test them with errors.Is.
func ReadFile(ctx context.Context, path string) ([]LogLine, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := ReadLines(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// ReadLines reads all of r and splits it into lines.
// "\r\n", "\n" and a bare "\r" all end a line; there is no line length limit.
// A terminator at the end of input does not start an extra empty line.
func ReadLines(ctx context.Context, r io.Reader) ([]LogLine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	text := strings.TrimPrefix(string(data), utf8BOM)

	var lines []LogLine
	for len(text) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		raw, rest := cutLine(text)
		lines = append(lines, NewLogLine(raw, len(lines)))
		text = rest
	}

	return lines, nil
}

// cutLine splits s at the first line terminator.
func cutLine(s string) (line, rest string) {
	i := strings.IndexAny(s, "\r\n")
	if i < 0 {
		return s, ""
	}
	if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
		return s[:i], s[i+2:]
	}
	return s[:i], s[i+1:]
}
