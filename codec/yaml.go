package codec

import (
	"context"

	"gopkg.in/yaml.v3"

	fastenum "github.com/qntln/fastenum"
)

// YAML returns a Codec that carries members of e as the YAML encoding of their
// value. Semantics mirror JSON: decode resolves through the enum's by-value
// lookup, encode emits the value of a member owned by e.
func YAML[V any](e *fastenum.Enum[V]) Codec[[]byte, *fastenum.Member[V]] {
	return yamlCodec[V]{enum: e}
}

type yamlCodec[V any] struct {
	enum *fastenum.Enum[V]
}

func (c yamlCodec[V]) Decode(ctx context.Context, wire []byte) (*fastenum.Member[V], error) {
	var v V
	if err := yaml.Unmarshal(wire, &v); err != nil {
		return nil, fastenum.Issues{{
			Enum:    c.enum.Name(),
			Code:    fastenum.CodeInvalidValue,
			Message: "invalid YAML member value",
			Cause:   err,
		}}
	}
	return c.enum.Of(v)
}

func (c yamlCodec[V]) Encode(ctx context.Context, m *fastenum.Member[V]) ([]byte, error) {
	mm, err := c.enum.Coerce(m)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(mm.Value())
}
