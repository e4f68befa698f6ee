// Package href converts between a generic URL's string components and a
// structured application-URL value: decoded path segments, a multi-valued
// query mapping and an optional fragment.
//
// # Overview
//
// Applications that build and inspect links usually care about three things
// a generic URL parser hands them still percent-encoded: the path, the query
// and the fragment. This package decodes those parts once into a plain value
// type, [URL], and renders the value back into canonical text with minimal
// per-part escaping, so application code never re-parses or re-encodes URL
// text by hand.
//
//	u, err := href.Parse("/search?q=go+urls&page=2#results")
//	if err != nil {
//	    // the full-string form is the only fallible entry point
//	}
//	u.Query.Get("q") // ["go urls"]
//
//	next := u.Clone()
//	next.Query.Set("page", "3")
//	fmt.Println(next) // "/search?page=3&q=go%20urls" -> keys sorted, space as %20
//
// Values can equally be built directly:
//
//	link := &href.URL{
//	    Segments: []string{"users", "42", "posts"},
//	    Query:    href.Values{"sort": {"date"}},
//	    Fragment: href.Frag("top"),
//	}
//	link.String() // "/users/42/posts?sort=date#top"
//
// # Decoding
//
// All strings stored in a [URL] are percent-decoded; encoding is applied only
// while rendering. Decoding is total: a malformed escape (a '%' not followed
// by two hex digits) is passed through literally rather than failing the
// parse, because URL-derived text is untrusted by nature. Query keys and
// values additionally decode '+' as space per the
// application/x-www-form-urlencoded convention; fragments do not.
//
// # Rendering
//
// Rendering is canonical and deterministic: query keys are emitted in sorted
// order (values for a repeated key keep their insertion order), keys whose
// value list is empty are dropped, a non-empty key with an empty value is
// emitted without '=', and spaces always encode as "%20", never '+'. A
// trailing slash is represented by an explicit empty final segment.
//
// # Concurrency
//
// Every operation is a pure function of its inputs. Values are safe for
// concurrent use as long as callers do not mutate a shared URL in place;
// use [URL.Clone] to derive variants.
package href
