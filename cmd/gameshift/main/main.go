package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/gameshift/cmd/gameshift"
	"github.com/arthur-debert/gameshift/pkg/style"
)

func main() {
	rootCmd := gameshift.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Only usage errors get here; everything else is reported by the command
		fmt.Fprintln(os.Stderr, style.GetStyle("error").Render(fmt.Sprintf("Error: %v", err)))
		fmt.Fprintln(os.Stderr)
		_ = rootCmd.Usage()

		os.Exit(1)
	}
}
