package rfc3986

import (
	"slices"

	"braces.dev/errtrace"

	"github.com/sigmavirus24/rfc3986/internal/errorutil"
	"github.com/sigmavirus24/rfc3986/internal/grammar"
)

// ValidateScheme checks that every character of the scheme is an ASCII
// alphabetic character.
//
// The check is deliberately narrower than the RFC 3986 scheme rule: digits
// and "+", "-", "." are rejected as well. A URI without a scheme passes.
//
// On success the receiver is returned unchanged so validations can be
// chained; on failure the error wraps [ErrInvalidSchemeChar].
func (u *URI) ValidateScheme() (*URI, error) {
	if !u.hasScheme {
		return u, nil
	}
	for i := 0; i < len(u.scheme); i++ {
		if !grammar.IsAlpha(u.scheme[i]) {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(
				ErrInvalidSchemeChar, "%q is not valid in scheme %q", u.scheme[i], u.scheme,
			))
		}
	}
	return u, nil
}

// ValidateSchemeOneOf checks that the scheme is a member of the provided
// allow-list. The match is case-sensitive and exact. A URI without a scheme
// passes.
//
// On success the receiver is returned unchanged so validations can be
// chained; on failure the error wraps [ErrSchemeNotAllowed].
func (u *URI) ValidateSchemeOneOf(allowed ...string) (*URI, error) {
	if !u.hasScheme {
		return u, nil
	}
	if !slices.Contains(allowed, u.scheme) {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(
			ErrSchemeNotAllowed, "%q is not in the set of allowed schemes %q", u.scheme, allowed,
		))
	}
	return u, nil
}
