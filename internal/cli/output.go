// Package cli implements the non-interactive output path: formatting
// values handed over on the command line (or stdin) and printing them.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on
// their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
package cli

import (
	"fmt"
	"io"

	"github.com/agbru/numfield/internal/numfmt"
	"github.com/agbru/numfield/internal/ui"
)

// Line is one processed batch input: the raw token, its parse outcome and
// the formatted rendering of the parsed value.
type Line struct {
	Input  string
	Status numfmt.ParseStatus
	Result numfmt.Result
}

// FormatLine renders one batch line without color: the grouped display,
// the abbreviation in parentheses when present, and a trailing marker for
// inputs that did not parse cleanly.
func FormatLine(l Line) string {
	s := l.Result.Display
	if l.Result.Abbrev != "" {
		s += " (" + l.Result.Abbrev + ")"
	}
	switch l.Status {
	case numfmt.ParseOK, numfmt.ParseEmpty:
		return s
	default:
		return s + " [" + l.Status.String() + "]"
	}
}

// DisplayLine writes one batch line with theme colors. In quiet mode only
// the bare display text is written, one value per line, suitable for
// piping.
func DisplayLine(w io.Writer, l Line, quiet bool) {
	if quiet {
		fmt.Fprintln(w, l.Result.Display)
		return
	}

	t := ui.GetCurrentTheme()
	s := t.Primary + l.Result.Display + t.Reset
	if l.Result.Abbrev != "" {
		s += " " + t.Secondary + "(" + l.Result.Abbrev + ")" + t.Reset
	}
	switch l.Status {
	case numfmt.ParseOK, numfmt.ParseEmpty:
	case numfmt.ParseClamped:
		s += " " + t.Warning + "[clamped]" + t.Reset
	default:
		s += " " + t.Error + "[" + l.Status.String() + "]" + t.Reset
	}
	fmt.Fprintln(w, s)
}
