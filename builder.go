package rfc3986

import (
	"strings"

	"github.com/sigmavirus24/rfc3986/internal/types"
	"github.com/sigmavirus24/rfc3986/internal/util"
)

// Builder incrementally assembles a [URI].
//
// Each setter mutates the builder in place and returns it for chaining;
// [Builder.Build] copies the accumulated components into a fresh immutable
// [URI]. A builder instance is meant to be owned by a single call sequence
// and is not safe for concurrent use.
type Builder struct {
	scheme      string
	hasScheme   bool
	userinfo    string
	hasUserinfo bool
	host        string
	port        uint16
	hasPort     bool
	path        string
	hasPath     bool
	query       string
	hasQuery    bool
	fragment    string
	hasFragment bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// SetScheme stores the scheme verbatim.
func (b *Builder) SetScheme(scheme string) *Builder {
	b.scheme, b.hasScheme = scheme, true
	return b
}

// SetUser stores the username as the whole userinfo.
//
// No percent-encoding is applied; the username is stored verbatim.
func (b *Builder) SetUser(username string) *Builder {
	b.userinfo, b.hasUserinfo = username, true
	return b
}

// SetUserPassword stores the userinfo as "username:password".
//
// No percent-encoding is applied; both values are stored verbatim.
func (b *Builder) SetUserPassword(username, password string) *Builder {
	b.userinfo, b.hasUserinfo = username+":"+password, true
	return b
}

// SetHost stores the host verbatim. No validation is performed.
func (b *Builder) SetHost(host string) *Builder {
	b.host = host
	return b
}

func (b *Builder) SetPort(port uint16) *Builder {
	b.port, b.hasPort = port, true
	return b
}

// SetPath stores the path with exactly one leading "/" stripped, if present,
// so the stored path is separator-free regardless of how it is re-joined.
func (b *Builder) SetPath(path string) *Builder {
	b.path, b.hasPath = strings.TrimPrefix(path, "/"), true
	return b
}

// SetQuery stores a caller-provided raw query verbatim.
func (b *Builder) SetQuery(query string) *Builder {
	b.query, b.hasQuery = query, true
	return b
}

// SetQueryValues generates the query by joining every key/value pair of vals
// as "key=value" separated by "&".
//
// Pair order follows map iteration order and is therefore unspecified; use
// [Builder.SetQueryPairs] when a deterministic query string is required.
func (b *Builder) SetQueryValues(vals Values) *Builder {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for k, vs := range vals {
		for _, v := range vs {
			writeQueryPair(sb, k, v)
		}
	}

	b.query, b.hasQuery = sb.String(), true
	return b
}

// SetQueryPairs generates the query by joining the given [key, value] pairs
// as "key=value" separated by "&", preserving their order.
func (b *Builder) SetQueryPairs(pairs [][2]string) *Builder {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for _, kv := range pairs {
		writeQueryPair(sb, kv[0], kv[1])
	}

	b.query, b.hasQuery = sb.String(), true
	return b
}

func writeQueryPair(sb *strings.Builder, k, v string) {
	if sb.Len() > 0 {
		sb.WriteByte('&')
	}
	sb.WriteString(k)
	sb.WriteByte('=')
	sb.WriteString(v)
}

// SetFragment stores the fragment verbatim.
func (b *Builder) SetFragment(fragment string) *Builder {
	b.fragment, b.hasFragment = fragment, true
	return b
}

// Build copies the accumulated components into a new immutable [URI].
//
// The host defaults to empty text when never set; all other omitted
// components stay absent. The builder remains usable after Build.
func (b *Builder) Build() *URI {
	u := URI{
		scheme:      b.scheme,
		hasScheme:   b.hasScheme,
		userinfo:    b.userinfo,
		hasUserinfo: b.hasUserinfo,
		path:        b.path,
		hasPath:     b.hasPath,
		query:       b.query,
		hasQuery:    b.hasQuery,
		fragment:    b.fragment,
		hasFragment: b.hasFragment,
	}
	if b.hasPort {
		u.addr = types.HostPort(b.host, b.port)
	} else {
		u.addr = types.Host(b.host)
	}
	return &u
}
