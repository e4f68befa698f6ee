package href

import (
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/hrefkit/href/internal/escape"
	"github.com/hrefkit/href/internal/ioutil"
	"github.com/hrefkit/href/internal/util"
)

// RenderTo writes the canonical string form of the URL to the provided writer.
// The output is the path (always, at least "/"), then the query when any key
// has a non-empty value list, then the fragment when present.
func (u *URL) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(u.renderPath)
	cw.Call(u.renderQuery)
	cw.Call(u.renderFragment)
	return errtrace.Wrap2(cw.Result())
}

func (u *URL) renderPath(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString("/") //nolint:errcheck
	for i, seg := range u.Segments {
		if i > 0 {
			cw.WriteString("/") //nolint:errcheck
		}
		cw.WriteString(escape.Escape(seg, shouldEscapePathSegmentChar)) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URL) renderQuery(w io.Writer) (num int, err error) {
	if len(u.Query) == 0 {
		return 0, nil
	}

	// One record per key: kv[0] is the key, kv[1:] its values. Keys with no
	// values are dropped here, which also decides whether '?' is written.
	kvs := make([][]string, 0, len(u.Query))
	for k, vs := range u.Query {
		if len(vs) == 0 {
			continue
		}
		kvs = append(kvs, append([]string{k}, vs...))
	}
	if len(kvs) == 0 {
		return 0, nil
	}
	slices.SortFunc(kvs, util.CmpKVs)

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString("?") //nolint:errcheck

	var i int
	for _, kv := range kvs {
		for _, v := range kv[1:] {
			if i > 0 {
				cw.WriteString("&") //nolint:errcheck
			}
			// A non-empty key with an empty value renders without '=', so
			// "?k" re-parses to k -> "". Every other shape keeps the '=':
			// "?=v" and "?=" would otherwise collapse into other forms.
			if v == "" && kv[0] != "" {
				cw.WriteString(escape.Escape(kv[0], shouldEscapeQueryChar)) //nolint:errcheck
			} else {
				cw.Fprint(escape.Escape(kv[0], shouldEscapeQueryChar), "=", escape.Escape(v, shouldEscapeQueryChar)) //nolint:errcheck
			}
			i++
		}
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URL) renderFragment(w io.Writer) (num int, err error) {
	frag, ok := u.Fragment.Value()
	if !ok {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint("#", escape.Escape(frag, shouldEscapeFragmentChar)) //nolint:errcheck
	return errtrace.Wrap2(cw.Result())
}

// Render returns the canonical string representation of the URL.
func (u *URL) Render(_ *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, nil) //nolint:errcheck
	return sb.String()
}

// PathString renders a path-only URL from the given decoded segments.
// It is equivalent to rendering a URL with no query and no fragment.
func PathString(segments []string) string {
	u := URL{Segments: segments}
	return u.Render(nil)
}

func shouldEscapePathSegmentChar(c byte) bool { return !escape.IsPathSegmentCharSafe(c) }

func shouldEscapeQueryChar(c byte) bool { return !escape.IsQueryCharSafe(c) }

func shouldEscapeFragmentChar(c byte) bool { return !escape.IsFragmentCharSafe(c) }
