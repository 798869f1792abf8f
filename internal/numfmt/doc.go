// Package numfmt implements the bidirectional text formatting used by
// numeric inspector fields: rendering a typed numeric value as a grouped,
// human-readable string (optionally with a magnitude abbreviation), and
// recovering a numeric value from free-form edited text.
//
// All functions in this package are pure and total. Format never fails;
// Parse never returns an error: malformed input yields the caller-supplied
// previous value, so a field stays usable through transient invalid states
// (a user mid-typing "-" or "1.").
//
// The package uses a single fixed, locale-independent decimal format: period
// as the decimal point, an optional leading minus, and a configurable group
// separator. Exponent notation is never accepted on input.
package numfmt
