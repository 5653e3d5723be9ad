//go:build variantgen

package pkg

import "github.com/govariant/variantgen"

// Shape is a closed set of geometric values. Its variants live in the shapes
// subpackage.
type Shape interface {
	Point()
	Circle(radius float64)
}

var _ = variantgen.Sum[Shape](variantgen.InModule("shapes"))
