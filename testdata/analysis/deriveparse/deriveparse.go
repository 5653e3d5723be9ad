//go:build variantgen

package deriveparse

import "github.com/govariant/variantgen"

type Shape interface {
	Point()
	Circle(radius float64)
}

var _ = variantgen.Sum[Shape](
	variantgen.Derive(""), // want `derive name must not be empty`
	variantgen.Skip(Shape.Point),
	variantgen.Skip(Shape.Point), // want `variant Point already skipped`
	variantgen.DeriveFor(Shape.Point, "String"), // want `cannot derive for skipped variant Point`
)
