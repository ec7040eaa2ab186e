package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/infowriter-convert/pkg/config"
	"github.com/ccollicutt/infowriter-convert/pkg/converter"
)

// Banner is printed before arguments are parsed.
const Banner = `InfoWriter OBS Plugin Output Converter
=====================================`

// ConvertOptions holds command-line options for the convert command.
type ConvertOptions struct {
	Input      string
	Output     string
	ConfigFile string
	Quiet      bool
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "infowriter-convert",
		Short: "Convert InfoWriter marker logs into a chapter list",
		Long: `Convert the event log written by the InfoWriter OBS plugin into a
simplified chapter/marker list of "<timestamp> <label>" lines.

Records:
  - HOTKEY:<note>@<context>   becomes "<timestamp> <note>"
  - EVENT: RECORDING PAUSED   becomes "<timestamp> RECORDING PAUSED"
  - EVENT: RECORDING RESUMED  becomes "<timestamp> RECORDING RESUMED"
  - EVENT: START/STOP RECORDING and other events are dropped

Malformed records are reported as warnings and skipped.

Environment:
  INFOWRITER_INPUT, INFOWRITER_OUTPUT override the configured paths.`,
		Example: `  infowriter-convert
  infowriter-convert -i my-notes.txt -o converted.txt
  infowriter-convert --input recording.txt --output chapters.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", config.DefaultInput, "Input file path")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", config.DefaultOutput, "Output file path")
	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "YAML config file with default paths")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress per-record warnings")

	return cmd
}

// InputNotFoundError reports a missing input file by the path the user gave.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("Input file '%s' not found.", e.Path)
}

func (e *InputNotFoundError) Unwrap() error {
	return e.Err
}

func runConvert(cmd *cobra.Command, opts *ConvertOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var convOpts []converter.Option
	if !cfg.Quiet {
		convOpts = append(convOpts, converter.WithWarningFunc(printWarning(out)))
	}

	if _, err := converter.New(convOpts...).Convert(ctx, cfg.Input, cfg.Output); err != nil {
		if errors.Is(err, converter.ErrInputNotFound) {
			return &InputNotFoundError{Path: cfg.Input, Err: err}
		}
		return err
	}

	fmt.Fprintf(out, "✓ Successfully converted '%s' to '%s'\n", cfg.Input, cfg.Output)
	return nil
}

// resolveConfig applies flag > environment > config file > default precedence.
func resolveConfig(ctx context.Context, cmd *cobra.Command, opts *ConvertOptions) (*config.Config, error) {
	cfg, err := config.Load(ctx, opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = opts.Input
	}
	if flags.Changed("output") {
		cfg.Output = opts.Output
	}
	if flags.Changed("quiet") {
		cfg.Quiet = opts.Quiet
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func printWarning(w io.Writer) converter.WarningFunc {
	return func(warning converter.Warning) {
		fmt.Fprintln(w, warning)
	}
}
