//go:build variantgen

package derivebuild

import "github.com/govariant/variantgen"

type Shape interface {
	Liner(f func()) // want `cannot derive Equal for variant Liner; field F of type func\(\) is not comparable`
}

var _ = variantgen.Sum[Shape](
	variantgen.Derive("Hash"), // want `unknown derive Hash; supported derives are String, GoString, Equal, Clone`
	variantgen.DeriveFor(Shape.Liner, "Equal"),
)
