package numfmt

import (
	"math"
	"strconv"
)

// Kind identifies the storage width and precision class of a field's
// underlying numeric type. It is fixed per field and determined externally
// by the declared type of the backing property.
type Kind int

const (
	// Int32 is a 32-bit signed integer field.
	Int32 Kind = iota
	// Int64 is a 64-bit signed integer field.
	Int64
	// Float32 is a 32-bit floating-point field.
	Float32
	// Float64 is a 64-bit floating-point field.
	Float64
)

// String returns the lowercase name of the kind, matching the names accepted
// by configuration (-kind flag, NUMFIELD_KIND).
func (k Kind) String() string {
	switch k {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return "unknown"
}

// IsFloat reports whether the kind carries a fractional part.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// bits returns the bit size passed to strconv for this kind.
func (k Kind) bits() int {
	if k == Int32 || k == Float32 {
		return 32
	}
	return 64
}

// fracGuard returns the magnitude beyond which the kind can no longer
// represent exact integer digits, so fractional display is suppressed.
// Integer kinds have no guard.
func (k Kind) fracGuard() float64 {
	switch k {
	case Float32:
		return 1 << 23
	case Float64:
		return 1 << 52
	}
	return math.Inf(1)
}

// ParseKind converts a configuration string into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "int32", "int":
		return Int32, true
	case "int64", "long":
		return Int64, true
	case "float32", "float":
		return Float32, true
	case "float64", "double":
		return Float64, true
	}
	return 0, false
}

// Value is a tagged variant over the four supported numeric kinds. Integer
// kinds are stored in i, floating kinds in f; the inactive slot is zero.
// Values are comparable with ==.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

// Int32Value wraps a 32-bit integer.
func Int32Value(v int32) Value { return Value{kind: Int32, i: int64(v)} }

// Int64Value wraps a 64-bit integer.
func Int64Value(v int64) Value { return Value{kind: Int64, i: v} }

// Float32Value wraps a 32-bit float. The value is stored widened but keeps
// float32 precision semantics for formatting and parsing.
func Float32Value(v float32) Value { return Value{kind: Float32, f: float64(v)} }

// Float64Value wraps a 64-bit float.
func Float64Value(v float64) Value { return Value{kind: Float64, f: v} }

// ZeroValue returns the zero of the given kind.
func ZeroValue(k Kind) Value { return Value{kind: k} }

// Kind returns the kind tag of the value.
func (v Value) Kind() Kind { return v.kind }

// Int64 returns the integer payload. For floating kinds it truncates toward
// zero.
func (v Value) Int64() int64 {
	if v.kind.IsFloat() {
		return int64(v.f)
	}
	return v.i
}

// Float64 returns the value widened to float64. Int64 payloads above 2^53
// lose precision in the conversion; magnitude comparisons remain safe.
func (v Value) Float64() float64 {
	if v.kind.IsFloat() {
		return v.f
	}
	return float64(v.i)
}

// Magnitude returns the absolute value widened to float64. Going through
// float64 avoids the overflowing negation of the most-negative integer:
// -MinInt64 is not representable in int64, but float64(MinInt64) is exact.
func (v Value) Magnitude() float64 {
	return math.Abs(v.Float64())
}

// IsZero reports whether the value is the numeric zero of its kind.
// A floating negative zero counts as zero.
func (v Value) IsZero() bool {
	if v.kind.IsFloat() {
		return v.f == 0
	}
	return v.i == 0
}

// canonical returns the kind's native decimal string form without any
// grouping: strconv shortest-form for floats, plain base-10 for integers.
func (v Value) canonical() string {
	if v.kind.IsFloat() {
		return strconv.FormatFloat(v.f, 'f', -1, v.kind.bits())
	}
	return strconv.FormatInt(v.i, 10)
}
