package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/guess/internal/cli"
	"github.com/arthur-debert/guess/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Dispatch failures have already been rendered in the chosen format
		if !cli.IsReported(err) {
			errorStyle := styles.GetStyle(styles.Error)
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
