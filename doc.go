package fastenum

// Package fastenum builds closed, immutable enumeration types at runtime.
//
// - Declare members in order via New/Add and publish the type with Build
// - Query by value (Coerce/Of), by name (Member), or by iteration (All/Backward)
// - A stable error model via Issues (code, enum name, offending member/value)
// - Wire codecs for members (JSON/YAML/name) under codec/
//
// Design policy:
// - Keep only public APIs in the root package; put detail packages under internal/.
// - Place wire codecs under codec/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	color := fastenum.New[int]("Color").
//		Add("RED", 1).
//		Add("GREEN", 2).
//		Add("BLUE", 3).
//		MustBuild()
//
//	m, err := color.Coerce(2)     // Color.GREEN
//	m, err = color.Member("BLUE") // exact name lookup
//	for m := range color.All() {
//		...
//	}
//
// An Enum is frozen once Build returns: members can never be added, removed,
// or renamed, and every query is safe for any number of concurrent readers.
