package rfc3986

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/sigmavirus24/rfc3986/internal/grammar"
	"github.com/sigmavirus24/rfc3986/internal/types"
)

// Parse decomposes a URI from the given input s (string or []byte) into a [URI].
//
// The input is split on ASCII delimiters in a fixed order:
//
//  1. the scheme is everything before the first "://";
//  2. a leading "//" with no scheme marks a network-path reference
//     (RFC 3986 section 4.2) and is dropped;
//  3. the userinfo is everything before the first "@";
//  4. the host is everything before the first ":" or "/"; after a ":" the
//     port runs up to the first "/", or to the end of the input when no "/"
//     follows, in which case the path is absent;
//  5. the fragment is everything after the last "#";
//  6. the query is everything after the last "?";
//  7. whatever remains is the path, stored without its leading "/".
//
// The scheme, userinfo, host and port delimiters are resolved left-to-right,
// the fragment and query delimiters right-to-left. Parse never fails on
// structurally odd input; the only error it returns is [ErrMalformedPort],
// when the port text is not an unsigned 16-bit decimal integer.
func Parse[T ~string | ~[]byte](s T) (*URI, error) {
	var u URI
	rest := string(s)

	if scheme, after, ok := strings.Cut(rest, "://"); ok {
		u.scheme, u.hasScheme = scheme, true
		rest = after
	} else {
		// a URI may start with "//" without an explicit scheme
		rest = strings.TrimPrefix(rest, "//")
	}

	// the userinfo ends at the first "@"
	if userinfo, after, ok := strings.Cut(rest, "@"); ok {
		u.userinfo, u.hasUserinfo = userinfo, true
		rest = after
	}

	switch host, after, ok := strings.Cut(rest, ":"); {
	case ok:
		// the port runs to the first "/" or to the end of the input
		portText, pathText, _ := strings.Cut(after, "/")
		port, err := grammar.ParsePort(portText)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		u.addr = types.HostPort(host, port)
		rest = pathText
	default:
		if host, after, ok := strings.Cut(rest, "/"); ok {
			u.addr = types.Host(host)
			rest = after
		} else {
			u.addr = types.Host(rest)
			rest = ""
		}
	}

	// fragment first, then query, both resolved from the right: a literal
	// "#" or "?" may legally appear earlier in path segments of
	// non-conformant but commonly seen input
	if rest != "" {
		if before, fragment, ok := cutLast(rest, '#'); ok {
			u.fragment, u.hasFragment = fragment, true
			rest = before
		}
		if before, query, ok := cutLast(rest, '?'); ok {
			u.query, u.hasQuery = query, true
			rest = before
		}
	}

	if rest != "" {
		u.path, u.hasPath = rest, true
	}

	return &u, nil
}

// cutLast slices s around the last instance of sep.
func cutLast(s string, sep byte) (before, after string, found bool) {
	if i := strings.LastIndexByte(s, sep); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}
