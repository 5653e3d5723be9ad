//go:build variantgen

package untaggedsum

import "github.com/govariant/variantgen"

var _ = variantgen.Sum[Shape]() // want `sum type Shape must be declared in a file with "//go:build variantgen" constraint`
