package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/javacheck/highlight"
	"github.com/spf13/cobra"
)

func newHighlightCmd() *cobra.Command {
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Print a .java file with syntax highlighting",
		Long: `Print a .java file to stdout with keywords and comments highlighted.

If no file is provided, reads Java source from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error

			if len(args) == 0 {
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				filename := args[0]
				if ext := filepath.Ext(filename); ext != ".java" {
					return fmt.Errorf("expected .java file, got %s", ext)
				}
				source, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			if asHTML {
				lines := highlight.TextHTML(string(source))
				fmt.Println(strings.Join(lines, "<br>\n"))
				return nil
			}

			fmt.Println(highlight.TextANSI(string(source)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "emit HTML instead of ANSI colors")

	return cmd
}
