// Package output renders converted marker records and writes them to disk.
package output

import "fmt"

// Record is one line of the converted marker list.
type Record struct {
	// Timestamp is copied verbatim from the source timestamp line.
	Timestamp string

	// Label is the note key or the recording state.
	Label string
}

// String returns the record as "<timestamp> <label>".
func (r Record) String() string {
	return fmt.Sprintf("%s %s", r.Timestamp, r.Label)
}
