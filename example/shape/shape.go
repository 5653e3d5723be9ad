//go:build variantgen

// Package shape declares a geometric sum type. Run the following command at
// the example root to regenerate the variants:
//
//	go run github.com/govariant/variantgen/cmd/variantgen ./shape
package shape

import "github.com/govariant/variantgen"

// Shape is one of a fixed set of geometric values.
type Shape interface {
	// Point is the origin.
	Point()
	// Circle is a circle with a radius.
	Circle(radius float64)
	// Rect is an axis-aligned rectangle.
	Rect(width, height float64)
}

var _ = variantgen.Sum[Shape](variantgen.Derive("String", "Equal"))
