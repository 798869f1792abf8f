package numfmt

import (
	"strings"
)

// Result is the output of a single Format call: the grouped display text and
// an optional magnitude abbreviation (empty when absent). It is a pure
// projection of the input value, recomputed on every render pass and never
// cached.
type Result struct {
	// Display is the grouped, human-readable rendering of the value.
	Display string
	// Abbrev is the abbreviated companion ("123.46 M"), or "" when the
	// value is below the abbreviation threshold.
	Abbrev string
}

// Format renders a value as grouped decimal text per the options. Zero
// formats as "0" with no fraction and no abbreviation. The sign always
// precedes all digits and is never separated from them.
func Format(v Value, opts Options) Result {
	if v.IsZero() {
		return Result{Display: "0"}
	}

	s := v.canonical()
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	// Beyond the guard the float can no longer hold exact fractional
	// digits; showing them would be noise.
	fracLen := len(fracPart)
	if v.Magnitude() > v.kind.fracGuard() {
		fracPart = ""
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 1)
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(groupIntDigits(intPart, opts.GroupSeparator))
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(groupFracDigits(fracPart, opts.GroupSeparator))
	}

	var abbrev string
	if v.Magnitude() >= opts.AbbrevThreshold || fracLen > longFractionLen {
		abbrev = Abbreviate(v.Float64(), opts.AbbrevDecimalPlaces, opts)
	}

	return Result{Display: b.String(), Abbrev: abbrev}
}

// groupIntDigits inserts the separator every three digits counted from the
// right: "1234567" becomes "1 234 567".
func groupIntDigits(digits string, sep rune) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteRune(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupFracDigits inserts the separator every three digits counted from the
// left, immediately after the decimal point: "56789" becomes "567 89".
func groupFracDigits(digits string, sep rune) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	for i := 0; i < len(digits); i += 3 {
		if i > 0 {
			b.WriteRune(sep)
		}
		end := i + 3
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[i:end])
	}
	return b.String()
}
