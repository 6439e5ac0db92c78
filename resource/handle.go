package resource

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// Layout describes how a Handle splits its 32 bits. IndexBits bits address a slot in a Manager and the
// remaining 32-IndexBits bits hold the generation of that slot at the time the Handle was issued.
//
// Each resource kind declares its own empty Layout type, which also makes handles of different kinds
// distinct types:
//
//	type TextureLayout struct{}
//
//	func (TextureLayout) IndexBits() uint { return 12 }
//
//	type TextureHandle = resource.Handle[TextureLayout]
type Layout interface {
	IndexBits() uint
}

// ValidateLayout returns an error if the layout L does not leave room for both an index and a generation
func ValidateLayout[L Layout]() error {
	var layout L
	bits := layout.IndexBits()
	if bits == 0 || bits >= 32 {
		return errors.Newf("layout %T has %d index bits, but must have between 1 and 31", layout, bits)
	}

	return nil
}

func indexBits[L Layout]() uint {
	var layout L
	return layout.IndexBits()
}

func indexMask(bits uint) uint32 {
	return uint32(1)<<bits - 1
}

func generationMask(bits uint) uint32 {
	return uint32(1)<<(32-bits) - 1
}

// Handle is an opaque reference to a value owned by a Manager. It is a plain, copyable value: all
// validity checks happen in the Manager that issued it. Handles can only be created by a Manager.
//
// The zero Handle never refers to a live value: its generation decodes to the largest representable
// generation, which a Manager never issues. Slot generations wrap to zero one step before reaching it.
type Handle[L Layout] struct {
	// The generation is stored one higher than its real value, so that the zero value decodes
	// to the generation just below zero
	packed uint32
}

func newHandle[L Layout](index, generation uint32) Handle[L] {
	bits := indexBits[L]()
	stored := (generation + 1) & generationMask(bits)
	return Handle[L]{packed: index&indexMask(bits) | stored<<bits}
}

// Index returns the slot that this handle addresses
func (h Handle[L]) Index() uint32 {
	return h.packed & indexMask(indexBits[L]())
}

// Generation returns the generation of the addressed slot at the time this handle was issued
func (h Handle[L]) Generation() uint32 {
	bits := indexBits[L]()
	return ((h.packed >> bits) - 1) & generationMask(bits)
}

// IsZero reports whether this is the default handle that no Manager issued
func (h Handle[L]) IsZero() bool {
	return h.packed == 0
}

func (h Handle[L]) String() string {
	return fmt.Sprintf("Handle(%d:%d)", h.Index(), h.Generation())
}

// LogValue defers formatting until a log record is actually written
func (h Handle[L]) LogValue() slog.Value {
	return slog.StringValue(h.String())
}
