package fastenum_test

import (
	"slices"
	"testing"

	fastenum "github.com/qntln/fastenum"
)

func newColor(t *testing.T) *fastenum.Enum[int] {
	t.Helper()
	return fastenum.New[int]("Color").
		Add("RED", 1).
		Add("GREEN", 2).
		Add("BLUE", 3).
		MustBuild()
}

func TestCoerce_Idempotent(t *testing.T) {
	color := newColor(t)
	for m := range color.All() {
		got, err := color.Coerce(m)
		if err != nil {
			t.Fatalf("coercing %v: %v", m, err)
		}
		if got != m {
			t.Fatalf("expected the identical member back, got %v", got)
		}
	}
}

func TestCoerce_ByValue(t *testing.T) {
	color := newColor(t)
	green, err := color.Member("GREEN")
	if err != nil {
		t.Fatalf("GREEN must exist: %v", err)
	}
	m, err := color.Coerce(2)
	if err != nil {
		t.Fatalf("Coerce(2): %v", err)
	}
	if m != green {
		t.Fatalf("Coerce(2) should be the GREEN singleton, got %v", m)
	}
}

func TestCoerce_InvalidValue(t *testing.T) {
	color := newColor(t)
	_, err := color.Coerce(5)
	if !fastenum.HasCode(err, fastenum.CodeInvalidValue) {
		t.Fatalf("expected invalid_value, got %v", err)
	}
	iss, _ := fastenum.AsIssues(err)
	if iss[0].Enum != "Color" {
		t.Fatalf("issue should carry the enum name, got %+v", iss[0])
	}
	if iss[0].Params["value"] != 5 {
		t.Fatalf("issue should carry the offending value, got %+v", iss[0])
	}

	// wrong dynamic type goes the same way
	if _, err := color.Coerce("RED"); !fastenum.HasCode(err, fastenum.CodeInvalidValue) {
		t.Fatalf("expected invalid_value for wrong type, got %v", err)
	}
}

func TestCoerce_MemberOfAnotherEnum(t *testing.T) {
	color := newColor(t)
	other := fastenum.New[int]("Status").Add("OK", 1).MustBuild()
	ok, _ := other.Member("OK")
	if _, err := color.Coerce(ok); !fastenum.HasCode(err, fastenum.CodeInvalidValue) {
		t.Fatalf("foreign member must not coerce, got %v", err)
	}
}

func TestMember_ExactCaseSensitiveLookup(t *testing.T) {
	color := newColor(t)
	if _, err := color.Member("GREEN"); err != nil {
		t.Fatalf("exact lookup failed: %v", err)
	}
	for _, name := range []string{"green", "Green", " GREEN", "YELLOW"} {
		_, err := color.Member(name)
		if !fastenum.HasCode(err, fastenum.CodeUnknownMember) {
			t.Fatalf("lookup %q: expected unknown_member, got %v", name, err)
		}
	}
	if color.Has("green") || !color.Has("GREEN") {
		t.Fatalf("Has must be exact and case-sensitive")
	}
}

func TestIteration_DeclarationOrderAndReverse(t *testing.T) {
	color := newColor(t)
	forward := slices.Collect(color.All())
	if len(forward) != 3 {
		t.Fatalf("expected 3 members, got %d", len(forward))
	}
	names := color.Names()
	for i, m := range forward {
		if m.Name() != names[i] {
			t.Fatalf("forward order broken at %d: %v", i, m)
		}
	}

	backward := slices.Collect(color.Backward())
	want := slices.Clone(forward)
	slices.Reverse(want)
	if !slices.Equal(backward, want) {
		t.Fatalf("Backward must equal reversed forward order: %v vs %v", backward, want)
	}

	// sequences are restartable and independent
	first := slices.Collect(color.All())
	second := slices.Collect(color.All())
	if !slices.Equal(first, second) {
		t.Fatalf("All must be restartable")
	}
}

func TestIteration_EarlyBreak(t *testing.T) {
	color := newColor(t)
	var n int
	for range color.All() {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("expected a single yield before break, got %d", n)
	}
}

func TestValuesNamesMembers_AreFreshCopies(t *testing.T) {
	color := newColor(t)
	ms := color.Members()
	ms[0] = nil
	if again := color.Members(); again[0] == nil {
		t.Fatalf("Members must return a fresh slice")
	}
	vs := color.Values()
	if !slices.Equal(vs, []int{1, 2, 3}) {
		t.Fatalf("Values should follow declaration order, got %v", vs)
	}
	vs[0] = 99
	if again := color.Values(); again[0] != 1 {
		t.Fatalf("Values must return a fresh slice")
	}
}

func TestDuplicateValues_LastWriterWinsInIndex(t *testing.T) {
	flags := fastenum.New[int]("Flags").
		Add("A", 1).
		Add("B", 1).
		MustBuild()
	a, _ := flags.Member("A")
	b, _ := flags.Member("B")

	m, err := flags.Coerce(1)
	if err != nil {
		t.Fatalf("Coerce(1): %v", err)
	}
	if m != b {
		t.Fatalf("value index should hold the last declared member, got %v", m)
	}
	// A stays reachable by name and by iteration, and stays distinct.
	if a == b {
		t.Fatalf("A and B must be distinct singletons")
	}
	if got := slices.Collect(flags.All()); got[0] != a || got[1] != b {
		t.Fatalf("iteration must still expose both members, got %v", got)
	}
	if a.Hash() == b.Hash() {
		t.Fatalf("equal values with different names must hash apart")
	}
}

func TestUnhashableValues_LinearFallback(t *testing.T) {
	mixed := fastenum.New[any]("Mixed").
		Add("LIST", []int{1, 2}).
		Add("NUM", 3).
		MustBuild()

	// The slice value cannot enter the value index; the linear scan must still
	// find it, proving the index is a cache, not the source of truth.
	m, err := mixed.Of([]int{1, 2})
	if err != nil {
		t.Fatalf("Of(slice): %v", err)
	}
	if m.Name() != "LIST" {
		t.Fatalf("expected LIST, got %v", m)
	}

	// Indexed path still works next to unhashable members.
	if m, err := mixed.Of(3); err != nil || m.Name() != "NUM" {
		t.Fatalf("Of(3): %v, %v", m, err)
	}
	if _, err := mixed.Of([]int{9}); !fastenum.HasCode(err, fastenum.CodeInvalidValue) {
		t.Fatalf("expected invalid_value for unknown slice, got %v", err)
	}
}

func TestCoerce_NilValuedMember(t *testing.T) {
	opt := fastenum.New[any]("Opt").
		Add("NONE", nil).
		Add("SOME", 1).
		MustBuild()
	none, _ := opt.Member("NONE")

	// Coerce and Of must agree on nil: both resolve through the value index.
	if m, err := opt.Of(nil); err != nil || m != none {
		t.Fatalf("Of(nil): got %v, %v", m, err)
	}
	if m, err := opt.Coerce(nil); err != nil || m != none {
		t.Fatalf("Coerce(nil): got %v, %v", m, err)
	}

	// Without a nil-valued member, nil still takes the lookup path and misses.
	some := fastenum.New[any]("Some").Add("ONE", 1).MustBuild()
	if _, err := some.Coerce(nil); !fastenum.HasCode(err, fastenum.CodeInvalidValue) {
		t.Fatalf("expected invalid_value for undeclared nil, got %v", err)
	}

	// For non-interface value types nil can never match a member.
	color := newColor(t)
	if _, err := color.Coerce(nil); !fastenum.HasCode(err, fastenum.CodeInvalidValue) {
		t.Fatalf("expected invalid_value for nil on Enum[int], got %v", err)
	}
}

func TestCoerce_AnyValuedEnumIsStillIdempotent(t *testing.T) {
	mixed := fastenum.New[any]("Mixed").
		Add("LIST", []int{1, 2}).
		MustBuild()
	list, _ := mixed.Member("LIST")
	got, err := mixed.Coerce(list)
	if err != nil || got != list {
		t.Fatalf("expected identical member back, got %v, %v", got, err)
	}
}
