package rfc3986

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/sigmavirus24/rfc3986/internal/grammar"
	"github.com/sigmavirus24/rfc3986/internal/types"
	"github.com/sigmavirus24/rfc3986/internal/util"
)

// Addr is a container for host and optional port.
type Addr = types.Addr

// Host creates an Addr from a hostname without a port.
func Host(host string) Addr { return types.Host(host) }

// HostPort creates an Addr from a hostname and port.
func HostPort(host string, port uint16) Addr { return types.HostPort(host, port) }

// ParseAddr parses a "host[:port]" string from the given input s (string or []byte).
func ParseAddr[T ~string | ~[]byte](s T) (Addr, error) { return errtrace.Wrap2(types.ParseAddr(s)) }

// Values maps a string key to a list of string values.
// It is typically used to feed [Builder.SetQueryValues].
type Values = types.Values

// URI is an immutable decomposed representation of a URI.
//
// Per RFC 3986 a URI has five parts: the scheme, the authority
// (userinfo@host:port), the path, the query and the fragment. The authority
// is kept decomposed into its components; [URI.Authority] re-generates it.
//
// Every component except the host is optional. An absent component means it
// was not present in the source text; the host defaults to empty text.
type URI struct {
	scheme      string
	hasScheme   bool
	userinfo    string
	hasUserinfo bool
	addr        Addr
	path        string
	hasPath     bool
	query       string
	hasQuery    bool
	fragment    string
	hasFragment bool
}

// Scheme returns the scheme and a bool flag indicating whether it is set.
func (u *URI) Scheme() (string, bool) { return u.scheme, u.hasScheme }

// Userinfo returns the raw userinfo text and a bool flag indicating whether it is set.
func (u *URI) Userinfo() (string, bool) { return u.userinfo, u.hasUserinfo }

// Host returns the host. It is empty when the source text had no host.
func (u *URI) Host() string { return u.addr.Host() }

// Port returns the port, in case it is set, and bool flag indicating whether it is set.
func (u *URI) Port() (uint16, bool) { return u.addr.Port() }

// Addr returns the host and optional port as an [Addr].
func (u *URI) Addr() Addr { return u.addr }

// Path returns the path, stored without its leading "/", and a bool flag
// indicating whether it is set.
func (u *URI) Path() (string, bool) { return u.path, u.hasPath }

// Query returns the query and a bool flag indicating whether it is set.
func (u *URI) Query() (string, bool) { return u.query, u.hasQuery }

// Fragment returns the fragment and a bool flag indicating whether it is set.
func (u *URI) Fragment() (string, bool) { return u.fragment, u.hasFragment }

// Authority generates the authority of the URI as "userinfo@host:port".
// Separators are emitted only for components that are set, and component
// values are emitted exactly as stored, without any encoding.
func (u *URI) Authority() string {
	if u == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if u.hasUserinfo {
		sb.WriteString(u.userinfo)
		sb.WriteString("@")
	}
	sb.WriteString(u.addr.String())

	return sb.String()
}

// RenderTo renders the URI to w in its canonical form:
// scheme "://" authority "/" path "?" query "#" fragment,
// each separator emitted only when the component is set.
func (u *URI) RenderTo(w io.Writer) error {
	if u == nil {
		return nil
	}
	if u.hasScheme {
		if _, err := fmt.Fprint(w, u.scheme, "://"); err != nil {
			return errtrace.Wrap(err)
		}
	}
	if _, err := fmt.Fprint(w, u.Authority()); err != nil {
		return errtrace.Wrap(err)
	}
	if u.hasPath {
		if _, err := fmt.Fprint(w, "/", u.path); err != nil {
			return errtrace.Wrap(err)
		}
	}
	if u.hasQuery {
		if _, err := fmt.Fprint(w, "?", u.query); err != nil {
			return errtrace.Wrap(err)
		}
	}
	if u.hasFragment {
		if _, err := fmt.Fprint(w, "#", u.fragment); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// Render renders the URI to a string. See [URI.RenderTo].
func (u *URI) Render() string {
	if u == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	u.RenderTo(sb)
	return sb.String()
}

func (u *URI) String() string {
	if u == nil {
		return "<nil>"
	}
	return u.Render()
}

// Equal reports whether the URI equals the provided value, accepting URI and *URI.
// Two URIs are equal iff every component compares equal, including the
// presence flags of the optional components.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.scheme == other.scheme && u.hasScheme == other.hasScheme &&
		u.userinfo == other.userinfo && u.hasUserinfo == other.hasUserinfo &&
		u.addr.Equal(other.addr) &&
		u.path == other.path && u.hasPath == other.hasPath &&
		u.query == other.query && u.hasQuery == other.hasQuery &&
		u.fragment == other.fragment && u.hasFragment == other.hasFragment
}

// Clone returns a copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// IsZero reports whether no component of the URI is set.
func (u *URI) IsZero() bool {
	return u == nil || !u.hasScheme && !u.hasUserinfo && u.addr.IsZero() &&
		!u.hasPath && !u.hasQuery && !u.hasFragment
}

// IsValid reports whether the URI has at least one component set and its
// scheme, when set, passes [URI.ValidateScheme].
func (u *URI) IsValid() bool {
	return !u.IsZero() && (!u.hasScheme || grammar.IsScheme(u.scheme))
}
