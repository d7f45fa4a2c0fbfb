package dbg

import (
	petname "github.com/dustinkirkland/golang-petname"
)

// Readable random names, for generated files that nobody named.

func init() {
	// Names only need to be different from run to run, not reproducible.
	petname.NonDeterministicMode()
}

// Name returns something like "mighty-walrus".
func Name() string {
	return petname.Generate(2, "-")
}
