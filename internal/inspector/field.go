package inspector

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/numfield/internal/numfmt"
)

// Field binds a display label to a numeric slot and carries the transient
// edit state of the widget. The slot's value is the only durable state; the
// edit buffer exists only between StartEdit and Commit/Cancel.
type Field struct {
	// Label is the human-facing name shown next to the value.
	Label string

	slot    Slot
	editing bool
	text    string // edit buffer
	cursor  int    // byte offset into text; input is ASCII only
	seeded  string // display text at edit start, for change detection
}

// NewField binds a label to a slot.
func NewField(label string, slot Slot) Field {
	return Field{Label: label, slot: slot}
}

// Value reads the current value from the backing slot.
func (f *Field) Value() numfmt.Value { return f.slot.Get() }

// Editing reports whether the field is in edit mode.
func (f *Field) Editing() bool { return f.editing }

// EditText returns the current edit buffer and cursor position.
func (f *Field) EditText() (string, int) { return f.text, f.cursor }

// StartEdit enters edit mode seeded with the field's current display text,
// cursor at the end.
func (f *Field) StartEdit(opts numfmt.Options) {
	f.seeded = numfmt.Format(f.slot.Get(), opts).Display
	f.text = f.seeded
	f.cursor = len(f.text)
	f.editing = true
}

// CancelEdit leaves edit mode without touching the slot.
func (f *Field) CancelEdit() {
	f.editing = false
	f.text = ""
	f.cursor = 0
}

// Commit leaves edit mode and, when the buffer differs from the text the
// edit started with, parses it and writes the result back into the slot.
// The second return is false when change detection skipped the parse.
func (f *Field) Commit(opts numfmt.Options) (numfmt.ParseStatus, bool) {
	defer f.CancelEdit()

	if f.text == f.seeded {
		return numfmt.ParseOK, false
	}

	prev := f.slot.Get()
	v, status := numfmt.ParseText(f.text, prev.Kind(), prev, opts)
	f.slot.Set(v)
	return status, true
}

// HandleKey applies one key message to the edit buffer. Rune input is
// filtered to characters that can appear in the fixed decimal format plus
// the configured group separator; everything else is dropped silently so
// stray keystrokes never corrupt the buffer.
func (f *Field) HandleKey(msg tea.KeyMsg, opts numfmt.Options) {
	switch msg.Type {
	case tea.KeyBackspace:
		if f.cursor > 0 {
			f.text = f.text[:f.cursor-1] + f.text[f.cursor:]
			f.cursor--
		}
	case tea.KeyDelete:
		if f.cursor < len(f.text) {
			f.text = f.text[:f.cursor] + f.text[f.cursor+1:]
		}
	case tea.KeyLeft:
		if f.cursor > 0 {
			f.cursor--
		}
	case tea.KeyRight:
		if f.cursor < len(f.text) {
			f.cursor++
		}
	case tea.KeyHome:
		f.cursor = 0
	case tea.KeyEnd:
		f.cursor = len(f.text)
	case tea.KeySpace:
		f.insertRune(' ', opts)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			f.insertRune(r, opts)
		}
	}
}

func (f *Field) insertRune(r rune, opts numfmt.Options) {
	if !isEditRune(r, opts) {
		return
	}
	f.text = f.text[:f.cursor] + string(r) + f.text[f.cursor:]
	f.cursor += len(string(r))
}

func isEditRune(r rune, opts numfmt.Options) bool {
	return unicode.IsDigit(r) || r == '-' || r == '.' || r == ' ' || r == opts.GroupSeparator
}
