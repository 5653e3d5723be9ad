//go:build variantgen

package pkg

import "github.com/govariant/variantgen"

type Shape interface {
	Circle(float64)
	Rect(width, height float64)
}

var _ = variantgen.Sum[Shape]()
