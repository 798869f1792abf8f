// Package inspector implements the interactive host around the numfmt core:
// a bubbletea panel of labelled numeric fields that renders each value as
// grouped text with its magnitude abbreviation, and routes in-place edits
// back through the parser on commit.
//
// The inspector never owns the numbers it displays. Each field is bound to a
// Slot, a read/write window onto externally owned storage; the widget reads
// the current value on every render pass and writes back only when an edit
// is committed with text that differs from what was originally shown.
package inspector
