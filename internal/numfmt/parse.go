package numfmt

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseStatus classifies the outcome of a ParseText call. The returned
// value is valid for every status; the status exists so callers (widgets,
// batch tooling, metrics) can observe what happened without the core ever
// failing outward.
type ParseStatus int

const (
	// ParseOK means the text parsed cleanly into the kind's range.
	ParseOK ParseStatus = iota
	// ParseEmpty means the text was empty or whitespace-only and the zero
	// of the kind was returned.
	ParseEmpty
	// ParseMalformed means the text was not a number in the fixed decimal
	// format and the previous value was returned.
	ParseMalformed
	// ParseClamped means the magnitude was out of range and was saturated
	// to the kind's bound (OverflowClamp policy).
	ParseClamped
	// ParseRejected means the magnitude was out of range and the previous
	// value was returned (OverflowReject policy).
	ParseRejected
)

// String returns a short name for logging and metrics labels.
func (s ParseStatus) String() string {
	switch s {
	case ParseOK:
		return "ok"
	case ParseEmpty:
		return "empty"
	case ParseMalformed:
		return "malformed"
	case ParseClamped:
		return "clamped"
	case ParseRejected:
		return "rejected"
	}
	return "unknown"
}

// Parse recovers a numeric value from edited field text. It is total: any
// malformed input returns prev unchanged, empty input returns the zero of
// the kind, and out-of-range input follows the configured overflow policy.
func Parse(text string, kind Kind, prev Value, opts Options) Value {
	v, _ := ParseText(text, kind, prev, opts)
	return v
}

// ParseText is Parse with an explicit outcome classification.
func ParseText(text string, kind Kind, prev Value, opts Options) (Value, ParseStatus) {
	clean := stripSeparators(text, opts.GroupSeparator)
	if clean == "" {
		return ZeroValue(kind), ParseEmpty
	}
	if !isFixedDecimal(clean, kind.IsFloat()) {
		return prev, ParseMalformed
	}

	if kind.IsFloat() {
		return parseFloatKind(clean, kind, prev, opts)
	}
	return parseIntKind(clean, kind, prev, opts)
}

// stripSeparators removes every occurrence of the group separator and of
// plain spaces, then trims remaining whitespace from the ends.
func stripSeparators(text string, sep rune) string {
	clean := strings.Map(func(r rune) rune {
		if r == sep || r == ' ' {
			return -1
		}
		return r
	}, text)
	return strings.TrimSpace(clean)
}

// isFixedDecimal reports whether s is a number in the fixed input format:
// an optional leading minus, decimal digits, and (for floating kinds) at
// most one period with at least one digit somewhere. Exponent notation,
// hex floats, "Inf" and "NaN" spellings are all rejected here.
func isFixedDecimal(s string, allowFraction bool) bool {
	rest := strings.TrimPrefix(s, "-")
	if rest == "" {
		return false
	}
	sawDigit := false
	sawPoint := false
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
			sawDigit = true
		case r == '.' && allowFraction && !sawPoint:
			sawPoint = true
		default:
			return false
		}
	}
	return sawDigit
}

func parseIntKind(clean string, kind Kind, prev Value, opts Options) (Value, ParseStatus) {
	n, err := strconv.ParseInt(clean, 10, kind.bits())
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if opts.OverflowPolicy == OverflowReject {
				return prev, ParseRejected
			}
			// strconv already saturated n to the bound for this bit
			// size and sign; native wraparound never happens.
			return intValue(kind, n), ParseClamped
		}
		return prev, ParseMalformed
	}
	return intValue(kind, n), ParseOK
}

func parseFloatKind(clean string, kind Kind, prev Value, opts Options) (Value, ParseStatus) {
	f, err := strconv.ParseFloat(clean, kind.bits())
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if math.IsInf(f, 0) {
				// Magnitude overflow. Underflow toward zero (also
				// ErrRange) keeps the closest value instead.
				if opts.OverflowPolicy == OverflowReject {
					return prev, ParseRejected
				}
				return floatValue(kind, math.Copysign(maxFloat(kind), f)), ParseClamped
			}
			return floatValue(kind, f), ParseOK
		}
		return prev, ParseMalformed
	}
	return floatValue(kind, f), ParseOK
}

func intValue(kind Kind, n int64) Value {
	if kind == Int32 {
		return Int32Value(int32(n))
	}
	return Int64Value(n)
}

func floatValue(kind Kind, f float64) Value {
	if kind == Float32 {
		return Float32Value(float32(f))
	}
	return Float64Value(f)
}

func maxFloat(kind Kind) float64 {
	if kind == Float32 {
		return math.MaxFloat32
	}
	return math.MaxFloat64
}
