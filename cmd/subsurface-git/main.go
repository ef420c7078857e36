// Package main provides the entry point for the subsurface git dive log
// loader CLI.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
