package inspector

import "github.com/agbru/numfield/internal/numfmt"

// Slot is the read/write binding between a field widget and the numeric
// storage it does not own. Implementations decide where the value actually
// lives; the inspector only ever calls Get on render and Set on commit.
type Slot interface {
	// Get returns the current value of the backing storage.
	Get() numfmt.Value
	// Set writes a new value into the backing storage.
	Set(v numfmt.Value)
}

// MemorySlot is the in-process Slot used by the demo inspector and by
// tests: a plain variable behind the interface.
type MemorySlot struct {
	v numfmt.Value
}

// NewMemorySlot creates a slot holding the given initial value.
func NewMemorySlot(v numfmt.Value) *MemorySlot {
	return &MemorySlot{v: v}
}

// Get returns the stored value.
func (s *MemorySlot) Get() numfmt.Value { return s.v }

// Set replaces the stored value.
func (s *MemorySlot) Set(v numfmt.Value) { s.v = v }
