package fastenum

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeInvalidValue reports a by-value lookup that matched no member, after
	// both the value index and the linear fallback failed.
	CodeInvalidValue = "invalid_value"
	// CodeUnknownMember reports a by-name lookup for a name that was never
	// declared. Name matching is exact and case-sensitive.
	CodeUnknownMember = "unknown_member"
	// CodeDuplicateMember reports two declarations sharing one member name;
	// Build rejects the whole enum rather than letting the later one win.
	CodeDuplicateMember = "duplicate_member"
	// CodeInitFailed reports a per-member init hook error; it aborts Build and
	// carries the hook error as Cause.
	CodeInitFailed = "init_failed"
)

// Issue represents a single enumeration error entry.
type Issue struct {
	Enum    string // Name of the enumeration type the issue belongs to.
	Code    string // One of the codes listed above.
	Message string
	Member  string // Offending member name, when the issue concerns one.
	Cause   error  // Optional: underlying error (init hook failures).
	// Params carries structured parameters (e.g., {"value": 5}) for i18n and
	// observability.
	Params map[string]any
}

// Issues is a collection of enumeration errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_member at Color.YELLOW
		if it.Member != "" {
			fmt.Fprintf(b, "%s at %s.%s", it.Code, it.Enum, it.Member)
		} else {
			fmt.Fprintf(b, "%s at %s", it.Code, it.Enum)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes issue causes to errors.Is/errors.As chains.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
