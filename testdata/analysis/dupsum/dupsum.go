//go:build variantgen

package dupsum

import "github.com/govariant/variantgen"

type Shape interface {
	Point()
}

var _ = variantgen.Sum[Shape]()
var _ = variantgen.Sum[Shape]() // want `duplicate Sum declaration for Shape`
