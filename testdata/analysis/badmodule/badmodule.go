//go:build variantgen

package badmodule

import "github.com/govariant/variantgen"

type Shape interface {
	Point()
}

var _ = variantgen.Sum[Shape](
	variantgen.InModule("Shapes"), // want `Shapes is not valid module name; need unexported identifier`
	variantgen.InModule("shapes"),
	variantgen.InModule("inner"), // want `module already configured`
)
