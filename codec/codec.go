// Package codec moves enum members across wire representations. Every decode
// path routes the wire value back through the owning enum's lookup, so a
// round-trip reconstructs "the member with this value" rather than a serialized
// object: when several members share an equal value, decoding lands on the one
// the value index holds (the last declared).
package codec

import "context"

// Codec performs bidirectional transformation between the wire representation
// A and an enum member, using the member's owning enum as the source of truth.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error) // wire -> member, via the enum's lookup
	Encode(ctx context.Context, b B) (A, error) // member -> wire, after an ownership check
}
