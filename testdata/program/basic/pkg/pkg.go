//go:build variantgen

// Package pkg declares shapes as a sum type.
package pkg

import "github.com/govariant/variantgen"

// Shape is a closed set of geometric values.
type Shape interface {
	// Point is the origin.
	Point()
	Circle(float64)
	Rect(width, height float64)
}

var _ = variantgen.Sum[Shape](variantgen.Derive("String"))
