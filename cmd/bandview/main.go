// Package main provides the entry point for bandview.
package main

import (
	"os"

	"github.com/safedep/bandview/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ReportError(os.Stderr, err))
	}
}
