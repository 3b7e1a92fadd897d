package rfc3986

import (
	"github.com/sigmavirus24/rfc3986/internal/errorutil"
	"github.com/sigmavirus24/rfc3986/internal/grammar"
)

// Parse errors.
const (
	// ErrMalformedPort is returned when the text between ":" and "/" in the
	// authority does not parse as an unsigned 16-bit decimal integer.
	ErrMalformedPort = grammar.ErrMalformedPort
)

// Validation errors.
const (
	// ErrInvalidSchemeChar is returned when a non-ASCII-alphabetic character
	// appears in the scheme.
	ErrInvalidSchemeChar Error = "invalid scheme character"
	// ErrSchemeNotAllowed is returned when the scheme is not a member of the
	// caller-supplied allow-list.
	ErrSchemeNotAllowed Error = "scheme not allowed"
)

// Error represents an rfc3986 error.
// See [errorutil.Error].
type Error = errorutil.Error

// IsSyntaxErr returns true if the error was produced by the decomposer
// rather than by a validator.
func IsSyntaxErr(err error) bool {
	return errorutil.IsSyntaxErr(err) //errtrace:skip
}
