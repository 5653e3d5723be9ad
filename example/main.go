package main

import (
	"fmt"
	"math"

	"example.com/variantgenexample/shape"
)

// area computes the area of s. The zero area of a point falls out of the
// narrowing misses.
func area(s shape.Shape) float64 {
	if c, ok := shape.AsCircle(s); ok {
		return math.Pi * c.Radius * c.Radius
	}
	if r, ok := shape.AsRect(s); ok {
		return r.Width * r.Height
	}
	return 0
}

func main() {
	shapes := []shape.Shape{
		shape.Point{}.AsShape(),
		shape.Circle{Radius: 1}.AsShape(),
		shape.Rect{Width: 3, Height: 4}.AsShape(),
	}

	// Output:
	// Point 0
	// Circle{Radius: 1} 3.141592653589793
	// Rect{Width: 3, Height: 4} 12
	for _, s := range shapes {
		fmt.Println(s, area(s))
	}
}
