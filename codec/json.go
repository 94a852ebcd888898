package codec

import (
	"context"

	j "github.com/goccy/go-json"

	fastenum "github.com/qntln/fastenum"
)

// JSON returns a Codec that carries members of e as the JSON encoding of their
// value. Decode unmarshals the wire bytes into V and resolves the member via
// the enum's by-value lookup; Encode checks the member belongs to e and emits
// its value.
func JSON[V any](e *fastenum.Enum[V]) Codec[[]byte, *fastenum.Member[V]] {
	return jsonCodec[V]{enum: e}
}

type jsonCodec[V any] struct {
	enum *fastenum.Enum[V]
}

func (c jsonCodec[V]) Decode(ctx context.Context, wire []byte) (*fastenum.Member[V], error) {
	var v V
	if err := j.Unmarshal(wire, &v); err != nil {
		return nil, fastenum.Issues{{
			Enum:    c.enum.Name(),
			Code:    fastenum.CodeInvalidValue,
			Message: "invalid JSON member value",
			Cause:   err,
		}}
	}
	return c.enum.Of(v)
}

func (c jsonCodec[V]) Encode(ctx context.Context, m *fastenum.Member[V]) ([]byte, error) {
	// Ownership check: a member of another enum must not serialize through
	// this codec.
	mm, err := c.enum.Coerce(m)
	if err != nil {
		return nil, err
	}
	return j.Marshal(mm.Value())
}
