package grammar

//go:generate go tool errtrace -w .

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/sigmavirus24/rfc3986/internal/errorutil"
)

const (
	ErrEmptyInput    Error = "empty input"
	ErrMalformedPort Error = "malformed port"
)

func newMalformedPortErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedPort, args...) //errtrace:skip
}

// ParsePort parses a decimal port number that must fit into 16 unsigned bits.
func ParsePort[T ~string | ~[]byte](s T) (uint16, error) {
	if len(s) == 0 {
		return 0, errtrace.Wrap(newMalformedPortErr(ErrEmptyInput))
	}
	port, err := strconv.ParseUint(string(s), 10, 16)
	if err != nil {
		return 0, errtrace.Wrap(newMalformedPortErr("%q is not a 16-bit unsigned decimal", string(s)))
	}
	return uint16(port), nil
}
