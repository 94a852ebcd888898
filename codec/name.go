package codec

import (
	"context"

	fastenum "github.com/qntln/fastenum"
)

// Name returns a Codec that carries members of e by member name instead of by
// value. Useful when values collide or are not stable across releases: the
// name index is a bijection, so decode always returns the exact member that
// was encoded.
func Name[V any](e *fastenum.Enum[V]) Codec[string, *fastenum.Member[V]] {
	return nameCodec[V]{enum: e}
}

type nameCodec[V any] struct {
	enum *fastenum.Enum[V]
}

func (c nameCodec[V]) Decode(ctx context.Context, wire string) (*fastenum.Member[V], error) {
	return c.enum.Member(wire)
}

func (c nameCodec[V]) Encode(ctx context.Context, m *fastenum.Member[V]) (string, error) {
	mm, err := c.enum.Coerce(m)
	if err != nil {
		return "", err
	}
	return mm.Name(), nil
}
