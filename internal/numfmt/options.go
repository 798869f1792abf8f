package numfmt

import "fmt"

// OverflowPolicy selects what Parse does when the parsed magnitude exceeds
// the kind's representable range.
type OverflowPolicy int

const (
	// OverflowClamp saturates to the kind's minimum or maximum bound,
	// following the sign of the out-of-range value. This is the default.
	OverflowClamp OverflowPolicy = iota
	// OverflowReject keeps the previous value unchanged.
	OverflowReject
)

// String returns the configuration name of the policy.
func (p OverflowPolicy) String() string {
	if p == OverflowReject {
		return "reject"
	}
	return "clamp"
}

// ParseOverflowPolicy converts a configuration string into a policy.
func ParseOverflowPolicy(s string) (OverflowPolicy, bool) {
	switch s {
	case "clamp":
		return OverflowClamp, true
	case "reject":
		return OverflowReject, true
	}
	return 0, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Formatting Options
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultGroupSeparator is the thin gap between digit triplets. A plain
	// space keeps the display copy-paste friendly and is stripped back out
	// by Parse together with the configured separator.
	DefaultGroupSeparator = ' '

	// DefaultAbbrevThreshold is the minimum absolute magnitude at which a
	// magnitude abbreviation is appended next to the grouped display.
	// Values below 10 000 are short enough to read ungrouped.
	DefaultAbbrevThreshold = 10_000

	// DefaultAbbrevDecimalPlaces is the number of fractional digits kept in
	// the abbreviated form ("123.46 M").
	DefaultAbbrevDecimalPlaces = 2

	// longFractionLen is the length of a canonical fractional string above
	// which a floating value is considered unreadably precise, triggering
	// an abbreviation even below the magnitude threshold.
	longFractionLen = 4
)

// Options is the explicit configuration handed to Format and Parse. It is an
// immutable value passed by the caller, never process-wide mutable state.
type Options struct {
	// GroupSeparator is inserted every three digits. Any single rune except
	// the decimal point; stripped (together with plain spaces) by Parse.
	GroupSeparator rune
	// AbbrevThreshold is the minimum absolute magnitude that produces an
	// abbreviation alongside the grouped display.
	AbbrevThreshold float64
	// AbbrevDecimalPlaces is the round-half-to-even precision of the
	// abbreviated form. Must be >= 0.
	AbbrevDecimalPlaces int
	// OverflowPolicy selects clamp-to-bound or reject-and-retain when
	// parsed input exceeds the kind's range.
	OverflowPolicy OverflowPolicy
}

// DefaultOptions returns the stock configuration: space separator,
// abbreviation from 10 000 with two decimal places, clamping overflow.
func DefaultOptions() Options {
	return Options{
		GroupSeparator:      DefaultGroupSeparator,
		AbbrevThreshold:     DefaultAbbrevThreshold,
		AbbrevDecimalPlaces: DefaultAbbrevDecimalPlaces,
		OverflowPolicy:      OverflowClamp,
	}
}

// Validate checks the options for internal consistency. The separator must
// not collide with characters that carry meaning in the fixed decimal
// format.
func (o Options) Validate() error {
	switch o.GroupSeparator {
	case '.':
		return fmt.Errorf("group separator must not be the decimal point")
	case '-':
		return fmt.Errorf("group separator must not be the minus sign")
	}
	if o.GroupSeparator >= '0' && o.GroupSeparator <= '9' {
		return fmt.Errorf("group separator must not be a digit: %q", o.GroupSeparator)
	}
	if o.AbbrevDecimalPlaces < 0 {
		return fmt.Errorf("abbreviation decimal places must be >= 0, got %d", o.AbbrevDecimalPlaces)
	}
	if o.AbbrevThreshold <= 0 {
		return fmt.Errorf("abbreviation threshold must be positive, got %g", o.AbbrevThreshold)
	}
	return nil
}
