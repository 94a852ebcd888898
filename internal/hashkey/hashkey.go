// Package hashkey decides which values may enter an enum's value index and
// computes the cached per-name member hash.
package hashkey

import (
	"hash/maphash"
	"reflect"
)

// One seed per process: member hashes are stable for the process lifetime but
// intentionally not across processes.
var seed = maphash.MakeSeed()

// Name hashes a member name.
func Name(name string) uint64 {
	return maphash.String(seed, name)
}

// Hashable reports whether v can serve as a map key without panicking. The
// check runs on the concrete value, not just its type, so comparable structs
// carrying uncomparable interface values are rejected too. Values failing this
// gate stay out of the value index and are found via the linear fallback.
func Hashable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}
