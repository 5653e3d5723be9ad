//go:build variantgen

package pkg

import "github.com/govariant/variantgen"

type Shape interface {
	Point()
	Circle(radius float64)
}

// Drawable marks values that can be rendered.
type Drawable interface {
	Draw()
}

var _ = variantgen.Sum[Shape](variantgen.ImplementMarkers(Drawable(nil)))
