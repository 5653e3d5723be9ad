//go:build variantgen

package pkg

import "github.com/govariant/variantgen"

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	None()
	Just(T)
}

var _ = variantgen.Sum[Maybe[int]]()
