//go:build variantgen

package misplaced

import "github.com/govariant/variantgen"

type Event interface {
	Created()
}

var decl = variantgen.Sum[Event]() // want `Sum must be assigned to the blank identifier`

func init() {
	_ = variantgen.Sum[Event]() // want `Sum must be declared at package level`
}

func setup() {
	variantgen.Sum[Event](variantgen.Derive("String")) // want `Sum must be declared at package level`
	variantgen.Derive("GoString")                      // want `Derive must be inlined in a Sum declaration`
}
