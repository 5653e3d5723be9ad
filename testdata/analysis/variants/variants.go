//go:build variantgen

package variants

import "github.com/govariant/variantgen"

type Event interface {
	Bad() error               // want `variant Bad of Event must not declare results`
	Worse(xs ...int)          // want `variant Worse of Event must not be variadic`
	Mixed(name string, _ int) // want `variant Mixed of Event cannot mix named and unnamed fields`
}

var _ = variantgen.Sum[Event]()

type Embed interface {
	error // want `cannot embed error in sum type Embed`
}

var _ = variantgen.Sum[Embed]()
