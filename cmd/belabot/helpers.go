package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// isTerminal reports whether writer is an interactive terminal. The setup
// wizard only clears the screen when it is, so piped transcripts stay
// readable.
func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// maskSecret hides credential values in rendered output while still showing
// whether they are configured.
func maskSecret(value string) string {
	if value == "" {
		return "(not set)"
	}
	return "(set)"
}
