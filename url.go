package href

//go:generate go tool errtrace -w .

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hrefkit/href/internal/types"
)

// RenderOptions contains options for rendering URLs.
type RenderOptions = types.RenderOptions

// Renderer is implemented by values that render themselves to a string or writer.
type Renderer = types.Renderer

var _ interface {
	Renderer
	types.ValidFlag
	types.Equalable
	types.Cloneable[*URL]
} = (*URL)(nil)

// URL is a structured application URL: decoded path segments, a multi-valued
// query mapping and an optional fragment.
//
// The zero value renders as "/". All fields hold decoded text; escaping
// happens only while rendering.
type URL struct {
	// Segments are the decoded path segments between slashes, in order.
	// A trailing slash is represented by an explicit empty final segment.
	Segments []string
	// Query maps decoded keys to decoded values in per-key insertion order.
	// A key with an empty value list is treated as absent.
	Query Values
	// Fragment is the decoded fragment. The zero Fragment means no '#' is
	// rendered; Frag("") renders a bare trailing '#'.
	Fragment Fragment
}

// Clone returns a deep copy of the URL.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.Segments = slices.Clone(u.Segments)
	u2.Query = u.Query.Clone()
	return &u2
}

// Equal compares this URL with another for equality. Queries are compared
// after normalization, so a nil mapping, an empty mapping and a mapping
// holding only empty value lists are all equal.
func (u *URL) Equal(val any) bool {
	var other *URL
	switch v := val.(type) {
	case URL:
		other = &v
	case *URL:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return slices.Equal(u.Segments, other.Segments) &&
		types.IsEqual(u.Query.normalized(), other.Query.normalized()) &&
		u.Fragment == other.Fragment
}

// IsValid checks whether the URL is renderable. Every non-nil value is:
// any decoded text can be escaped into a valid URL part.
func (u *URL) IsValid() bool { return u != nil }

// String returns the canonical string representation of the URL.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URL.
func (u *URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URL)(u))
		return
	}
}

// LogValue implements [log/slog.LogValuer].
func (u *URL) LogValue() slog.Value {
	return slog.StringValue(u.String())
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	u1, err := Parse(string(text))
	if err != nil {
		*u = URL{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
