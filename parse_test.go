package href_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hrefkit/href"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"root", "/", nil},
		{"double slash only", "//", nil},
		{"no slashes", "one", []string{"one"}},
		{"leading slash", "/one/two", []string{"one", "two"}},
		{"trailing slash", "/one/two/", []string{"one", "two"}},
		{"explicit trailing segment", "/one/two//", []string{"one", "two", ""}},
		{"inner empty segment", "/a//b", []string{"a", "", "b"}},
		{"decodes segments", "/caf%C3%A9/a%2Fb", []string{"café", "a/b"}},
		{"plus stays literal", "/c++", []string{"c++"}},
		{"malformed escape kept", "/50%/x%2", []string{"50%", "x%2"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := href.ParsePath(c.raw)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("href.ParsePath(%q) mismatch (-want +got):\n%v", c.raw, diff)
			}
		})
	}
}

func TestParseQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want href.Values
	}{
		{"empty", "", href.Values{}},
		{"single pair", "a=1", href.Values{"a": {"1"}}},
		{"bare key", "k", href.Values{"k": {""}}},
		{"bare key with equals elsewhere", "k&a=1", href.Values{"k": {""}, "a": {"1"}}},
		{"empty key", "=foo", href.Values{"": {"foo"}}},
		{"empty key empty value", "=", href.Values{"": {""}}},
		{"double ampersand skipped", "a=1&&b=2", href.Values{"a": {"1"}, "b": {"2"}}},
		{"leading and trailing ampersand", "&a=1&", href.Values{"a": {"1"}}},
		{"ampersands only", "&&&", href.Values{}},
		{"repeated key keeps order", "x=1&x=2&x=3", href.Values{"x": {"1", "2", "3"}}},
		{"value keeps extra equals", "a=b=c", href.Values{"a": {"b=c"}}},
		{"plus decodes to space", "q=go+urls", href.Values{"q": {"go urls"}}},
		{"percent twenty decodes to space", "q=go%20urls", href.Values{"q": {"go urls"}}},
		{"escaped plus stays plus", "q=1%2B1", href.Values{"q": {"1+1"}}},
		{"escaped separators", "a%3Db=c%26d", href.Values{"a=b": {"c&d"}}},
		{"malformed escape kept", "p=50%", href.Values{"p": {"50%"}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := href.ParseQuery(c.raw)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("href.ParseQuery(%q) mismatch (-want +got):\n%v", c.raw, diff)
			}
		})
	}
}

func TestParseFragment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"plain", "results", "results"},
		{"decodes", "sec%202", "sec 2"},
		{"plus stays literal", "a+b", "a+b"},
		{"malformed escape kept", "50%", "50%"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			frag := href.ParseFragment(c.raw)
			got, ok := frag.Value()
			if !ok {
				t.Fatalf("href.ParseFragment(%q).Value() ok = false, want true", c.raw)
			}
			if got != c.want {
				t.Errorf("href.ParseFragment(%q) = %q, want %q", c.raw, got, c.want)
			}
		})
	}
}

func TestFromURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want *href.URL
	}{
		{
			"path only",
			"https://example.com/a/b",
			&href.URL{Segments: []string{"a", "b"}},
		},
		{
			"escaped path",
			"https://example.com/a%2Fb/c",
			&href.URL{Segments: []string{"a/b", "c"}},
		},
		{
			"query and fragment",
			"/search?q=go+urls&page=2#results",
			&href.URL{
				Segments: []string{"search"},
				Query:    href.Values{"q": {"go urls"}, "page": {"2"}},
				Fragment: href.Frag("results"),
			},
		},
		{
			"force query",
			"/a?",
			&href.URL{Segments: []string{"a"}, Query: href.Values{}},
		},
		{
			"root",
			"https://example.com",
			&href.URL{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			gu, err := url.Parse(c.raw)
			if err != nil {
				t.Fatalf("url.Parse(%q) error = %v", c.raw, err)
			}
			got := href.FromURL(gu)
			if !got.Equal(c.want) {
				t.Errorf("href.FromURL(%q) = %+v, want %+v", c.raw, got, c.want)
			}
		})
	}

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		if got := href.FromURL(nil); got != nil {
			t.Errorf("href.FromURL(nil) = %+v, want nil", got)
		}
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     string
		want    *href.URL
		wantErr error
	}{
		{
			"full url",
			"https://example.com/users/42?sort=date#top",
			&href.URL{
				Segments: []string{"users", "42"},
				Query:    href.Values{"sort": {"date"}},
				Fragment: href.Frag("top"),
			},
			nil,
		},
		{
			"rootless",
			"/",
			&href.URL{},
			nil,
		},
		{
			"bare trailing hash",
			"/a#",
			&href.URL{Segments: []string{"a"}, Fragment: href.Frag("")},
			nil,
		},
		{
			"no fragment",
			"/a",
			&href.URL{Segments: []string{"a"}},
			nil,
		},
		{
			"fragment with hash remainder",
			"/a#b#c",
			&href.URL{Segments: []string{"a"}, Fragment: href.Frag("b#c")},
			nil,
		},
		{
			"empty input",
			"",
			nil,
			href.ErrEmptyInput,
		},
		{
			"malformed url",
			"http://exa mple.com/",
			nil,
			href.ErrMalformedInput,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := href.Parse(c.raw)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("href.Parse(%q) error = %v, want %v", c.raw, err, c.wantErr)
			}
			if c.wantErr != nil {
				return
			}
			if !got.Equal(c.want) {
				t.Errorf("href.Parse(%q) = %+v, want %+v", c.raw, got, c.want)
			}
		})
	}
}
