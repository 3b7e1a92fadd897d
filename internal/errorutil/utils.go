package errorutil

import "errors"

// IsSyntaxErr returns true if the error is a syntax error.
func IsSyntaxErr(err error) bool {
	var e interface{ Syntax() bool }
	return errors.As(err, &e) && e.Syntax()
}
