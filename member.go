package fastenum

import "github.com/qntln/fastenum/internal/hashkey"

// Member is one singleton constant of an Enum, pairing a unique name with a
// value. Members are created only by Build, never mutated afterwards, and
// compared by pointer identity; no ordering operators are defined.
type Member[V any] struct {
	enum  *Enum[V]
	name  string
	value V
	debug string // cached at Build; name/value never change
	hash  uint64 // cached hash of name, never of value
}

// Name returns the declared member name, unique within the owning enum.
func (m *Member[V]) Name() string { return m.name }

// Value returns the declared member value. Values need not be unique within
// the enum and need not be hashable.
func (m *Member[V]) Value() V { return m.value }

// Enum returns the owning enumeration type.
func (m *Member[V]) Enum() *Enum[V] { return m.enum }

// String renders the human form "TypeName.MemberName". It is derived on
// demand from already-cached parts.
func (m *Member[V]) String() string { return m.enum.name + "." + m.name }

// GoString returns the debug form "<TypeName.MemberName: value>", cached at
// Build. fmt's %#v verb picks it up.
func (m *Member[V]) GoString() string { return m.debug }

// Hash returns the cached hash of the member name. Two members hash equal only
// when their names are equal, which Build rules out inside one enum; equal
// values with different names always hash apart. It equals HashName(m.Name()).
func (m *Member[V]) Hash() uint64 { return m.hash }

// HashName returns the hash fastenum assigns to a member name. Stable within
// one process only.
func HashName(name string) uint64 { return hashkey.Name(name) }
