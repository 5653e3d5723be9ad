package untagged

import "github.com/govariant/variantgen" // want `file must have "//go:build variantgen" constraint when importing variantgen`

type Shape interface {
	Point()
}

var _ = variantgen.Sum[Shape]
