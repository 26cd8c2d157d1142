package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/gameshift/cmd/gameshift"
	"github.com/arthur-debert/gameshift/internal/version"
)

func main() {
	rootCmd := gameshift.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "GAMESHIFT",
		Section: "1",
		Source:  "gameshift " + version.Version,
		Manual:  "gameshift manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
