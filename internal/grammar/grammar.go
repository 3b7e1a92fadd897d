// Package grammar contains the character predicates and low-level parsing
// helpers shared by the URI decomposer and validators.
package grammar

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Syntax() bool { return true }

// IsAlpha reports whether c is an ASCII alphabetic character.
func IsAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

// IsScheme reports whether s is a non-empty, purely ASCII-alphabetic scheme.
// This is narrower than the RFC 3986 scheme rule: digits and "+", "-", "."
// are not accepted.
func IsScheme[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsAlpha(s[i]) {
			return false
		}
	}
	return true
}
