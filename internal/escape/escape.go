// Package escape implements byte-wise percent-encoding with per-part
// safe-character classes for application URL strings.
package escape

import (
	"bytes"

	"github.com/hrefkit/href/internal/constraints"
)

// Escape escapes s by replacing each byte matched by the shouldEscape callback
// with the hex form "% HEXDIG HEXDIG" (uppercase). Multi-byte characters are
// escaped one triplet per byte. Every class used by this module escapes '%',
// so escaping never produces text that decodes to something other than s.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Unescape unescapes s by converting each 3-byte substring of the form
// "% HEXDIG HEXDIG" into the hex-decoded byte. It is total: a '%' that does
// not open a valid triplet is passed through literally, so malformed input
// degrades to itself instead of failing.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// UnescapeForm unescapes s like [Unescape] after first converting '+' to
// space, per the application/x-www-form-urlencoded convention used by query
// keys and values.
func UnescapeForm[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '+':
			b.WriteByte(' ')
		case s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func isCtlChar(c byte) bool { return c < 0x20 || c == 0x7F }

var pathSegmentUnsafeChars = map[byte]bool{
	' ': true,
	'%': true,
	'/': true,
	'?': true,
	'#': true,
}

// IsPathSegmentCharSafe reports whether c may appear literally inside a path
// segment. '/' must be escaped so a segment cannot split itself; '?' and '#'
// would terminate the path.
func IsPathSegmentCharSafe(c byte) bool {
	return !isCtlChar(c) && !pathSegmentUnsafeChars[c]
}

var queryUnsafeChars = map[byte]bool{
	' ': true,
	'%': true,
	'&': true,
	'=': true,
	'+': true,
	'#': true,
}

// IsQueryCharSafe reports whether c may appear literally inside a query key
// or value. '&' and '=' are the query separators, '+' would decode to space
// under the form convention, and space itself always encodes as "%20".
func IsQueryCharSafe(c byte) bool {
	return !isCtlChar(c) && !queryUnsafeChars[c]
}

var fragmentUnsafeChars = map[byte]bool{
	' ': true,
	'%': true,
	'#': true,
}

// IsFragmentCharSafe reports whether c may appear literally inside a fragment.
// '/' and '?' carry no structure after '#' and stay literal.
func IsFragmentCharSafe(c byte) bool {
	return !isCtlChar(c) && !fragmentUnsafeChars[c]
}
