package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantErr bool
	}{
		{name: "record time marker", line: "0:05:23 Record Time Marker", want: "0:05:23"},
		{name: "multi-digit hours", line: "12:00:01 Record Time Marker", want: "12:00:01"},
		{name: "bare timestamp", line: "1:02:03", want: "1:02:03"},
		{name: "extra digits after seconds are not captured", line: "0:00:001", want: "0:00:00"},
		{name: "single-digit minutes", line: "0:5:23 Record Time Marker", wantErr: true},
		{name: "not at start of line", line: "at 0:05:23", wantErr: true},
		{name: "empty line", line: "", wantErr: true},
		{name: "marker line", line: "HOTKEY:Intro@ctx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTimestamp(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoTimestamp)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractNoteKey(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantErr bool
	}{
		{name: "simple key", line: "HOTKEY:Chapter One@SomeContext", want: "Chapter One"},
		{name: "key is trimmed", line: "HOTKEY:  Intro  @ctx", want: "Intro"},
		{name: "stops at first @", line: "HOTKEY:Q&A@ctx@more", want: "Q&A"},
		{name: "empty context", line: "HOTKEY:Outro@", want: "Outro"},
		{name: "no @", line: "HOTKEY:Intro", wantErr: true},
		{name: "empty key", line: "HOTKEY:@ctx", wantErr: true},
		{name: "lowercase prefix", line: "hotkey:Intro@ctx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractNoteKey(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoNoteKey)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNoteKeyIsNotTrimmedByExtractor(t *testing.T) {
	got, err := NewNoteKeyExtractor().Extract("HOTKEY: Intro @ctx")
	require.NoError(t, err)
	assert.Equal(t, " Intro ", got)
}

func TestNewExtractor_CustomMiss(t *testing.T) {
	miss := errors.New("no match")
	e := NewExtractor(TimestampPattern, miss)

	_, err := e.Extract("nothing here")
	assert.ErrorIs(t, err, miss)
}
