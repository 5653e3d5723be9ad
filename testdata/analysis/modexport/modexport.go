//go:build variantgen

package modexport

import "github.com/govariant/variantgen"

type shape interface { // want `sum type shape must be exported to generate into module "shapes"`
	point() // want `variant point must be exported to generate into module "shapes"`
}

var _ = variantgen.Sum[shape](variantgen.InModule("shapes"))
