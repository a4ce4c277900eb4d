package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dhamidi/javacheck/check"
	"github.com/dhamidi/javacheck/format"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var outputFormat string
	var firstErrorOnly bool

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate .java files line by line",
		Long: `Validate .java files line by line against the recognized statement shapes.

If no file is provided, reads Java source from stdin.

Each invalid line is reported with its line number, the offending text and
a suggestion. The exit status is 1 when any problem is found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []check.Option
			if firstErrorOnly {
				opts = append(opts, check.WithFirstErrorOnly())
			}

			var diags []check.Diagnostic
			if len(args) == 0 {
				source, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				diags = check.Validate(string(source), opts...)
			} else {
				for _, filename := range args {
					if ext := filepath.Ext(filename); ext != ".java" {
						return fmt.Errorf("expected .java file, got %s", ext)
					}
					source, err := os.ReadFile(filename)
					if err != nil {
						return fmt.Errorf("read file: %w", err)
					}
					fileOpts := append([]check.Option{check.WithFile(filename)}, opts...)
					diags = append(diags, check.Validate(string(source), fileOpts...)...)
				}
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(diags); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if len(diags) > 0 {
				color.New(color.FgRed).Fprintf(os.Stderr, "%d problem(s) found\n", len(diags))
				os.Exit(1)
			}
			color.New(color.FgGreen).Fprintln(os.Stderr, "no problems found")
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&firstErrorOnly, "first-error", false, "stop at the first invalid line")

	return cmd
}
