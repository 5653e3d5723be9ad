//go:build variantgen

package collision

import "github.com/govariant/variantgen"

type Shape interface {
	Point()                // want `cannot declare Point for variant Point; the name is already used`
	Label(asShape string)  // want `field AsShape of variant Label collides with a generated method`
}

type Point struct{}

var _ = variantgen.Sum[Shape]()
