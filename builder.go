package fastenum

import (
	"fmt"

	"github.com/qntln/fastenum/i18n"
	"github.com/qntln/fastenum/internal/hashkey"
)

// Builder collects ordered member declarations for one enumeration type.
// Declaration order becomes the enum's canonical iteration order. The builder
// is the explicit registration surface: only what goes through Add becomes a
// member, so methods and other class-level machinery never need filtering out.
type Builder[V any] struct {
	name  string
	decls []decl[V]
	init  func(*Member[V]) error
}

type decl[V any] struct {
	name  string
	value V
}

// New starts the declaration of an enumeration type with the given name.
func New[V any](typeName string) *Builder[V] {
	return &Builder[V]{name: typeName}
}

// Add declares one member. Values may repeat across members and need not be
// hashable; names must be unique or Build fails.
func (b *Builder[V]) Add(name string, value V) *Builder[V] {
	b.decls = append(b.decls, decl[V]{name: name, value: value})
	return b
}

// Init registers a per-member initialization hook. It runs once per member
// during Build, after the member's name, value, display string and hash are
// set. Any error aborts Build; a partial enum is never published.
func (b *Builder[V]) Init(fn func(*Member[V]) error) *Builder[V] {
	b.init = fn
	return b
}

// Build runs the one-time construction: it turns the ordered declarations into
// singleton members, fills the name index and the best-effort value index, and
// freezes the result. Duplicate names are rejected with a duplicate_member
// issue rather than letting the later declaration shadow the earlier one.
func (b *Builder[V]) Build() (*Enum[V], error) {
	e := &Enum[V]{
		name:    b.name,
		members: make([]*Member[V], 0, len(b.decls)),
		byName:  make(map[string]*Member[V], len(b.decls)),
		byValue: make(map[any]*Member[V], len(b.decls)),
	}
	for _, d := range b.decls {
		if _, dup := e.byName[d.name]; dup {
			return nil, Issues{{
				Enum:    b.name,
				Code:    CodeDuplicateMember,
				Member:  d.name,
				Message: i18n.T(CodeDuplicateMember, map[string]string{"name": d.name}),
				Params:  map[string]any{"name": d.name},
			}}
		}
		m := &Member[V]{
			enum:  e,
			name:  d.name,
			value: d.value,
			debug: fmt.Sprintf("<%s.%s: %#v>", b.name, d.name, d.value),
			hash:  hashkey.Name(d.name),
		}
		if b.init != nil {
			if err := b.init(m); err != nil {
				return nil, Issues{{
					Enum:    b.name,
					Code:    CodeInitFailed,
					Member:  d.name,
					Message: i18n.T(CodeInitFailed, map[string]string{"name": d.name}),
					Cause:   err,
					Params:  map[string]any{"name": d.name},
				}}
			}
		}
		e.members = append(e.members, m)
		e.byName[d.name] = m
		if hashkey.Hashable(d.value) {
			// Unhashable values stay out of the index; by-value lookups for
			// them take the linear path.
			e.byValue[d.value] = m
		}
	}
	return e, nil
}

// MustBuild is like Build but panics on error. Intended for package-level enum
// declarations evaluated at program startup.
func (b *Builder[V]) MustBuild() *Enum[V] {
	e, err := b.Build()
	if err != nil {
		panic(err)
	}
	return e
}
