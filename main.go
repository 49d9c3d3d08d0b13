// folio is an animated personal portfolio for the terminal.
//
// Usage:
//
//	folio [flags]
//	folio render [--width N]
//	folio theme [light|dark|system]
//	folio palettes
//	folio version
package main

import (
	"os"

	"gitlab.com/tinyland/lab/folio/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
