// Package variantgenerrors provides the error kinds reported by the variantgen
// code generator. Every diagnostic is tagged with one of the kinds so callers
// can classify failures with [errors.Is].
package variantgenerrors

import "errors"

var (
	// ErrParse indicates that a sum type declaration is malformed: the
	// declaration is not a named interface, a variant method has an illegal
	// signature, or a directive is used outside its expected place.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates that a sum type declaration is well-formed but its
	// options are invalid: an unknown derive, a skip conflict, a bad module
	// name, or an unusable marker interface.
	ErrConfig = errors.New("config error")
)
