// Package identity provides UniqueId, a comparable marker whose identity is the address
// of a private heap cell.
package identity

import (
	"cmp"
	"strconv"
)

// UniqueId is distinct from every other UniqueId alive at the same time.
//
// The identity lives in a separately allocated one-byte cell, never inline, so copying
// the struct, storing it in a slice that gets reallocated or returning it from a function
// leaves the identity unchanged. Plain assignment copies the handle and therefore keeps
// the identity; Clone is the only way to derive a new one.
//
// The order of UniqueId values follows cell addresses. It is total and stable for tokens
// that are alive together and carries no meaning beyond that: it is not creation order,
// and an address reclaimed by the collector may be handed out again to a later token.
//
// The zero value holds no cell. It is not produced by New or Clone, and all zero values
// are equal to each other.
type UniqueId struct {
	cell *byte
}

// New returns a UniqueId backed by a freshly allocated cell.
func New() UniqueId {
	return UniqueId{cell: newCell()}
}

// newCell must stay out of line. An inlined allocation that does not escape may be
// placed on the caller's goroutine stack, and stacks are copied when they grow.
// The cell is one byte because zero-sized allocations share a single address.
//
//go:noinline
func newCell() *byte {
	return new(byte)
}

// Clone returns a new UniqueId. The result is never equal to id.
func (id UniqueId) Clone() UniqueId {
	return New()
}

// Uintptr returns the address of the cell. Zero for the zero value.
func (id UniqueId) Uintptr() uintptr {
	return address(id.cell)
}

func (id UniqueId) IsZero() bool {
	return id.cell == nil
}

func (id UniqueId) Equal(other UniqueId) bool {
	return id.cell == other.cell
}

// Compare returns -1, 0 or +1 depending on whether id orders before, equal to or after other.
func (id UniqueId) Compare(other UniqueId) int {
	return cmp.Compare(id.Uintptr(), other.Uintptr())
}

func (id UniqueId) Less(other UniqueId) bool {
	return id.Compare(other) < 0
}

// Compare is UniqueId.Compare as a plain function, for slices.SortFunc and friends.
func Compare(a, b UniqueId) int {
	return a.Compare(b)
}

// String renders the cell address in decimal. For diagnostics only.
func (id UniqueId) String() string {
	return strconv.FormatUint(uint64(id.Uintptr()), 10)
}

func (id UniqueId) GoString() string {
	return "identity.UniqueId(" + id.String() + ")"
}
