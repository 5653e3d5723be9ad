//go:build variantgen

package markers

import "github.com/govariant/variantgen"

type Shape interface {
	Point()
}

type Drawable interface {
	Draw()
}

type Big interface {
	A()
	B()
}

type Sized interface {
	Size() int
}

var _ = variantgen.Sum[Shape](
	variantgen.ImplementMarkers(
		Drawable(nil),
		Big(nil),      // want `marker Big must declare exactly one method`
		Drawable(nil), // want `marker Drawable already configured`
		Sized(nil),    // want `marker method (Sized\.)?Size must take no parameters and return no results`
		nil,           // want `marker must be a typed nil like Marker\(nil\)`
	),
)
