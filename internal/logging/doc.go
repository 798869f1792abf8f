// Package logging provides a unified logging interface for the numeric
// field toolkit. It abstracts the underlying logging implementation,
// allowing consistent structured logging across components while keeping
// the TUI free to silence output entirely.
package logging
