package fastenum

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/qntln/fastenum/i18n"
	"github.com/qntln/fastenum/internal/hashkey"
)

// Enum is a closed, fixed-size enumeration type: an ordered set of Members
// fully determined when Build returns. It is immutable and safe for any number
// of concurrent readers; iteration calls hand out independent sequences.
type Enum[V any] struct {
	name    string
	members []*Member[V]          // declaration order, the canonical iteration order
	byName  map[string]*Member[V] // total: every member, keyed by exact name
	byValue map[any]*Member[V]    // partial: hashable values only, last declaration wins
}

// Name returns the enumeration type name.
func (e *Enum[V]) Name() string { return e.name }

// Len returns the member count, fixed at Build time.
func (e *Enum[V]) Len() int { return len(e.members) }

// Coerce maps an arbitrary value to its Member. A Member of this enum passes
// through unchanged, so Coerce is idempotent; anything else goes through the
// same two-tier by-value lookup as Of. Returns an invalid_value issue when no
// member matches.
func (e *Enum[V]) Coerce(v any) (*Member[V], error) {
	if m, ok := v.(*Member[V]); ok && m != nil && m.enum == e {
		return m, nil
	}
	if v == nil {
		// A nil interface never passes the V assertion below, even for
		// interface-typed V whose zero is nil. Hand it to the lookup anyway
		// when nil is a value the enum could hold.
		var zero V
		if any(zero) == nil {
			return e.Of(zero)
		}
		return nil, e.invalidValue(v)
	}
	if val, ok := v.(V); ok {
		return e.Of(val)
	}
	return nil, e.invalidValue(v)
}

// Of returns the Member whose value equals v. Hashable values hit the value
// index in O(1) expected time; a miss falls back to a linear scan over members
// in declaration order, which is what keeps unhashable and colliding values
// reachable. When several members share an equal hashable value, the index
// holds the last one declared. Returns an invalid_value issue when no member
// matches.
func (e *Enum[V]) Of(v V) (*Member[V], error) {
	if hashkey.Hashable(v) {
		if m, ok := e.byValue[v]; ok {
			return m, nil
		}
	}
	// Not indexed, now do the long search -- O(n) behavior.
	for _, m := range e.members {
		if reflect.DeepEqual(m.value, v) {
			return m, nil
		}
	}
	return nil, e.invalidValue(v)
}

// Member returns the member declared under exactly name. No partial or
// case-insensitive matching; an undeclared name yields an unknown_member
// issue.
func (e *Enum[V]) Member(name string) (*Member[V], error) {
	m, ok := e.byName[name]
	if !ok {
		return nil, Issues{{
			Enum:    e.name,
			Code:    CodeUnknownMember,
			Member:  name,
			Message: i18n.T(CodeUnknownMember, map[string]string{"name": name}),
			Params:  map[string]any{"name": name},
		}}
	}
	return m, nil
}

// Has reports whether a member was declared under exactly name.
func (e *Enum[V]) Has(name string) bool {
	_, ok := e.byName[name]
	return ok
}

// All returns a lazy, restartable sequence of members in declaration order.
func (e *Enum[V]) All() iter.Seq[*Member[V]] {
	return func(yield func(*Member[V]) bool) {
		for _, m := range e.members {
			if !yield(m) {
				return
			}
		}
	}
}

// Backward returns the members in reverse declaration order. It materializes
// the forward order and reverses it; no separate reverse index is kept.
func (e *Enum[V]) Backward() iter.Seq[*Member[V]] {
	return func(yield func(*Member[V]) bool) {
		rev := slices.Clone(e.members)
		slices.Reverse(rev)
		for _, m := range rev {
			if !yield(m) {
				return
			}
		}
	}
}

// Members returns a fresh slice of all members in declaration order.
func (e *Enum[V]) Members() []*Member[V] {
	return slices.Clone(e.members)
}

// Names returns all member names in declaration order.
func (e *Enum[V]) Names() []string {
	out := make([]string, len(e.members))
	for i, m := range e.members {
		out[i] = m.name
	}
	return out
}

// Values returns all member values in declaration order, duplicates included.
func (e *Enum[V]) Values() []V {
	out := make([]V, len(e.members))
	for i, m := range e.members {
		out[i] = m.value
	}
	return out
}

func (e *Enum[V]) invalidValue(v any) Issues {
	return Issues{{
		Enum:    e.name,
		Code:    CodeInvalidValue,
		Message: i18n.T(CodeInvalidValue, map[string]string{"value": fmt.Sprintf("%#v", v)}),
		Params:  map[string]any{"value": v},
	}}
}
