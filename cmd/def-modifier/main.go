// Package main provides the CLI entrypoint for def-modifier.
//
// def-modifier patches definition documents with mod files:
//   - apply: load a defs document, apply mod files in order, write the result
//   - parse: check field paths and print their segments
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
