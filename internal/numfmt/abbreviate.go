package numfmt

import (
	"math"
	"strconv"
)

// suffixTier maps a power-of-1000 exponent to its display label. The table
// is ordered by strictly increasing exponent with no gaps, starting at the
// thousands tier.
type suffixTier struct {
	exp   int
	label string
}

// suffixTable covers magnitudes up to 10^33 and beyond; values above the
// decillion tier reuse its suffix rather than failing.
var suffixTable = []suffixTier{
	{1, "K"},
	{2, "M"},
	{3, "B"},
	{4, "T"},
	{5, "Qa"},
	{6, "Qi"},
	{7, "Sx"},
	{8, "Sp"},
	{9, "Oc"},
	{10, "No"},
	{11, "Dc"},
}

// Abbreviate compresses a magnitude into "<rounded-value> <suffix>" form,
// e.g. 1_200_000 with two decimal places becomes "1.2 M". Below the
// configured threshold the value is returned in plain (ungrouped) decimal
// form with no suffix. Rounding is half-to-even in both cases.
func Abbreviate(value float64, decimalPlaces int, opts Options) string {
	magnitude := math.Abs(value)
	negative := math.Signbit(value) && magnitude != 0

	if magnitude < opts.AbbrevThreshold {
		s := roundEvenString(magnitude, decimalPlaces)
		if s == "0" {
			// Rounded away to nothing; a "-0" display helps nobody.
			return s
		}
		return applySign(negative, s)
	}

	// Last ascending entry still at or below the magnitude wins.
	tier := suffixTable[0]
	for _, t := range suffixTable {
		if magnitude >= math.Pow(1000, float64(t.exp)) {
			tier = t
		}
	}

	scaled := magnitude / math.Pow(1000, float64(tier.exp))
	return applySign(negative, roundEvenString(scaled, decimalPlaces)+" "+tier.label)
}

// roundEvenString rounds x half-to-even at the given number of decimal
// places and renders it with trailing zeros trimmed ("123.46", "10").
func roundEvenString(x float64, places int) string {
	pow := math.Pow(10, float64(places))
	rounded := math.RoundToEven(x*pow) / pow
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func applySign(negative bool, s string) string {
	if negative {
		return "-" + s
	}
	return s
}
