package types

//go:generate go tool errtrace -w .

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/sigmavirus24/rfc3986/internal/grammar"
)

// Addr is a container for host and optional port.
//
// The host is stored exactly as provided so that rendering an address
// reproduces the source text verbatim.
type Addr struct {
	host    string
	port    uint16
	hasPort bool
}

// Host returns an [Addr] containing the provided host and no port.
func Host(host string) Addr {
	return Addr{host: host}
}

// HostPort returns an [Addr] containing the provided host and port.
func HostPort(host string, port uint16) Addr {
	return Addr{host: host, port: port, hasPort: true}
}

// ParseAddr parses a "host[:port]" string into an [Addr].
func ParseAddr[T ~string | ~[]byte](s T) (Addr, error) {
	host, portText, ok := strings.Cut(string(s), ":")
	if !ok {
		return Host(host), nil
	}
	port, err := grammar.ParsePort(portText)
	if err != nil {
		return Addr{}, errtrace.Wrap(err)
	}
	return HostPort(host, port), nil
}

// Host returns the hostname portion of the address as provided during construction or parsing.
func (addr Addr) Host() string { return addr.host }

// Port returns the port, in case it is set, and bool flag indicating whether it is set.
func (addr Addr) Port() (uint16, bool) { return addr.port, addr.hasPort }

// String formats the address as host[:port].
// The port separator is emitted only when a port is set.
func (addr Addr) String() string {
	if !addr.hasPort {
		return addr.host
	}
	return addr.host + ":" + strconv.Itoa(int(addr.port))
}

// Format implements fmt.Formatter to support custom formatting verbs for Addr values.
func (addr Addr) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, addr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(addr.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, addr.String())
			return
		}

		type hideMethods Addr
		type Addr hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Addr(addr))
		return
	}
}

// Equal reports whether the address equals the provided value, accepting Addr and *Addr.
func (addr Addr) Equal(val any) bool {
	var other Addr
	switch v := val.(type) {
	case Addr:
		other = v
	case *Addr:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return addr.host == other.host && addr.port == other.port && addr.hasPort == other.hasPort
}

// IsValid reports whether the address contains a non-empty host component.
func (addr Addr) IsValid() bool { return addr.host != "" }

// IsZero reports whether the address has zero host and port information.
func (addr Addr) IsZero() bool { return addr.host == "" && !addr.hasPort }
