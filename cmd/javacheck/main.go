package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "javacheck",
		Short: "A toasty Java syntax checker",
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newHighlightCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newUICmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
