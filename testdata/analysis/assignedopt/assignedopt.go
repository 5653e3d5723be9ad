//go:build variantgen

package assignedopt

import "github.com/govariant/variantgen"

type Event interface {
	Created()
}

var skipOpt = variantgen.Skip(Event.Created) // want `cannot assign Skip to variable`

var _ = variantgen.Sum[Event](skipOpt) // want `option must be inlined, not assigned to variable`
