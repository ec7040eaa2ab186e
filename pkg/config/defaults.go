package config

import "os"

// Default values for configuration.
const (
	DefaultInput  = "input.txt"
	DefaultOutput = "output.txt"
)

// Environment variable names.
const (
	EnvInput  = "INFOWRITER_INPUT"
	EnvOutput = "INFOWRITER_OUTPUT"
)

// DefaultConfig returns a configuration with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if input := os.Getenv(EnvInput); input != "" {
		c.Input = input
	}
	if out := os.Getenv(EnvOutput); out != "" {
		c.Output = out
	}
}
