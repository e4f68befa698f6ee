package href

// Fragment is an optional decoded fragment string. The zero value means the
// URL has no fragment; Frag("") is a present-but-empty fragment, which
// renders a bare trailing '#'.
type Fragment struct {
	val string
	set bool
}

// Frag returns a present Fragment holding the decoded string s.
func Frag(s string) Fragment {
	return Fragment{val: s, set: true}
}

// Value returns the decoded fragment and a flag indicating whether it is present.
func (f Fragment) Value() (string, bool) { return f.val, f.set }

// IsZero checks whether the fragment is absent.
func (f Fragment) IsZero() bool { return !f.set }

// String returns the decoded fragment, or "" when absent.
func (f Fragment) String() string { return f.val }

// Equal compares this Fragment with another for equality. An absent fragment
// never equals a present one, even a present-but-empty one.
func (f Fragment) Equal(val any) bool {
	switch v := val.(type) {
	case Fragment:
		return f == v
	case *Fragment:
		return v != nil && f == *v
	default:
		return false
	}
}
