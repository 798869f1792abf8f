package numfmt

import (
	"math"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRoundTrip_PropertyBased verifies the fundamental contract of the
// package: formatting a value and parsing the resulting display text
// recovers the original value exactly, for every representable value of
// every kind (modulo the precision-loss guard, which only ever drops
// fractional digits that the float could not carry anyway).
func TestRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)
	opts := DefaultOptions()

	properties.Property("int64 round-trips through its display text", prop.ForAll(
		func(n int64) bool {
			v := Int64Value(n)
			res := Format(v, opts)
			return Parse(res.Display, Int64, Int64Value(0), opts) == v
		},
		gen.Int64(),
	))

	properties.Property("int32 round-trips through its display text", prop.ForAll(
		func(n int32) bool {
			v := Int32Value(n)
			res := Format(v, opts)
			return Parse(res.Display, Int32, Int32Value(0), opts) == v
		},
		gen.Int32(),
	))

	properties.Property("float64 round-trips through its display text", prop.ForAll(
		func(f float64) bool {
			v := Float64Value(f)
			res := Format(v, opts)
			return Parse(res.Display, Float64, Float64Value(0), opts) == v
		},
		gen.Float64Range(-1e12, 1e12),
	))

	properties.Property("float32 round-trips through its display text", prop.ForAll(
		func(f float32) bool {
			v := Float32Value(f)
			res := Format(v, opts)
			return Parse(res.Display, Float32, Float32Value(0), opts) == v
		},
		gen.Float32Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}

// TestGrouping_PropertyBased verifies structural properties of the grouped
// display: stripping separators recovers the canonical digit string, and no
// digit run between separators is ever longer than three.
func TestGrouping_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)
	opts := DefaultOptions()

	properties.Property("stripping separators recovers the plain digits", prop.ForAll(
		func(n int64) bool {
			v := Int64Value(n)
			res := Format(v, opts)
			return strings.ReplaceAll(res.Display, " ", "") == v.canonical()
		},
		gen.Int64(),
	))

	properties.Property("integer digit groups never exceed three", prop.ForAll(
		func(n int64) bool {
			res := Format(Int64Value(n), opts)
			for _, run := range strings.Split(strings.TrimPrefix(res.Display, "-"), " ") {
				if len(run) == 0 || len(run) > 3 {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestParseClamp_PropertyBased verifies that out-of-range integer input can
// never wrap around: whatever the digits, the parsed int32 stays within its
// bounds and carries the input's sign.
func TestParseClamp_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)
	opts := DefaultOptions()

	properties.Property("int32 parse of any int64 text stays in int32 range", prop.ForAll(
		func(n int64) bool {
			text := Format(Int64Value(n), opts).Display
			got := Parse(text, Int32, Int32Value(0), opts)
			i := got.Int64()
			if i < math.MinInt32 || i > math.MaxInt32 {
				return false
			}
			if n > math.MaxInt32 {
				return i == math.MaxInt32
			}
			if n < math.MinInt32 {
				return i == math.MinInt32
			}
			return i == n
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
