//go:build variantgen

package badsum

import "github.com/govariant/variantgen"

type Shape struct{}

var _ = variantgen.Sum[Shape]() // want `cannot use Shape as sum type; need named interface type`

var _ = variantgen.Sum[error]() // want `sum type error must be declared in this package`
