package href

import (
	"net/url"
	"strings"

	"braces.dev/errtrace"

	"github.com/hrefkit/href/internal/constraints"
	"github.com/hrefkit/href/internal/errorutil"
	"github.com/hrefkit/href/internal/escape"
)

const (
	// ErrEmptyInput is returned by [Parse] for empty input.
	ErrEmptyInput errorutil.Error = "empty input"
	// ErrMalformedInput is returned by [Parse] when the URL parser rejects the input.
	ErrMalformedInput errorutil.Error = "malformed input"
)

// Parse parses a full URL string into a structured URL.
//
// The scheme and authority are consumed and discarded: a URL value models
// only the path, the query and the fragment. Malformed percent-escapes in
// any part never fail the parse; they degrade to literal text. The only
// error cases are empty input and input [net/url.Parse] rejects outright.
func Parse[T constraints.Byteseq](src T) (*URL, error) {
	if len(src) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	// Cut the fragment off first: net/url cannot represent a bare trailing
	// '#', which is distinct from no fragment at all.
	rest, frag, hasFrag := strings.Cut(string(src), "#")

	gu, err := url.Parse(rest)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, err))
	}

	u := FromURL(gu)
	if hasFrag {
		u.Fragment = ParseFragment(frag)
	}
	return u, nil
}

// FromURL converts an already-split generic URL into a structured URL,
// consuming only its path, query and fragment components.
//
// Query presence follows u.ForceQuery and u.RawQuery. A bare trailing '#'
// is not representable by [net/url.URL]; use [Parse] or [ParseFragment]
// when that distinction matters.
func FromURL(u *url.URL) *URL {
	if u == nil {
		return nil
	}

	out := &URL{Segments: ParsePath(u.EscapedPath())}
	if u.ForceQuery || u.RawQuery != "" {
		out.Query = ParseQuery(u.RawQuery)
	}
	if frag := u.EscapedFragment(); frag != "" {
		out.Fragment = ParseFragment(frag)
	}
	return out
}

// ParsePath splits a raw path into decoded segments.
//
// Exactly one leading and one trailing slash are stripped before splitting,
// so "/one/two" and "/one/two/" both yield ["one", "two"]; an empty or
// slash-only path yields no segments. Callers that need to round-trip a
// trailing slash must carry an explicit empty final segment.
func ParsePath(rawPath string) []string {
	rawPath = strings.TrimPrefix(rawPath, "/")
	rawPath = strings.TrimSuffix(rawPath, "/")
	if rawPath == "" {
		return nil
	}

	segs := strings.Split(rawPath, "/")
	for i, seg := range segs {
		segs[i] = escape.Unescape(seg)
	}
	return segs
}

// ParseQuery parses a raw query string into a multi-valued mapping.
//
// The raw query is split on '&'. An empty raw segment (from "&&" or a
// leading or trailing '&') contributes nothing, not even an empty key,
// while "=" contributes the empty key mapped to the empty value; the two
// shapes must stay distinguishable across a round trip. A segment without
// '=' maps the whole segment to the empty value. Keys and values decode
// '+' as space and then percent-decode, malformed escapes passing through
// literally. Values for a repeated key keep their left-to-right order.
func ParseQuery(rawQuery string) Values {
	vals := make(Values)
	for _, seg := range strings.Split(rawQuery, "&") {
		if seg == "" {
			continue
		}
		k, v, _ := strings.Cut(seg, "=")
		vals.Append(escape.UnescapeForm(k), escape.UnescapeForm(v))
	}
	return vals
}

// ParseFragment decodes a raw fragment into a present Fragment.
// Fragments percent-decode only; '+' stays literal.
func ParseFragment(rawFragment string) Fragment {
	return Frag(escape.Unescape(rawFragment))
}
