package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version information. Overridden at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// HasVersionFlag reports whether the arguments request version output.
// Checked before flag parsing so -version works regardless of other flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "numfield %s (commit %s, built %s, %s)\n",
		Version, Commit, Date, runtime.Version())
}
