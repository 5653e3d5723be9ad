package main

import (
	"fmt"

	"example.com/basic/pkg"
)

func main() {
	shapes := []pkg.Shape{
		pkg.Point{}.AsShape(),
		pkg.Circle{F0: 1.5}.AsShape(),
		pkg.Rect{Width: 3, Height: 4}.AsShape(),
	}
	for _, s := range shapes {
		fmt.Println(s)
	}

	if c, ok := pkg.AsCircle(shapes[1]); ok {
		fmt.Println("radius:", c.F0)
	}
}
