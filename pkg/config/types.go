// Package config provides configuration loading and validation for infowriter-convert.
package config

// Config holds the settings a conversion run starts from.
// Command-line flags take precedence over every field.
type Config struct {
	// Input is the InfoWriter log to read.
	Input string `yaml:"input"`

	// Output is the marker list to write. An existing file is overwritten.
	Output string `yaml:"output"`

	// Quiet suppresses per-record warnings.
	Quiet bool `yaml:"quiet,omitempty"`
}
