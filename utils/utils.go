package utils

import (
	"os"

	"golang.org/x/term"
)

// Contains returns true if the value is present in the collection.
func Contains[T comparable](collection []T, value T) bool {
	for _, v := range collection {
		if v == value {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the file is attached to a terminal.
// Colors and the progress indicator are only written to terminals.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
