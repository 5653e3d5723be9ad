//go:build variantgen

package pkg

import "github.com/govariant/variantgen"

type Shape interface {
	Point()
	Rect(width, height float64)
}

var _ = variantgen.Sum[Shape](
	variantgen.Derive("String", "Clone"),
	variantgen.DeriveFor(Shape.Rect, "Equal", "GoString"),
)
