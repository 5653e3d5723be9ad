package main

import (
	"fmt"

	"example.com/module/pkg"
	"example.com/module/pkg/shapes"
)

func main() {
	var s pkg.Shape = shapes.Circle{Radius: 2}.AsShape()
	c, ok := shapes.AsCircle(s)
	fmt.Println(ok, c.Radius)

	if _, ok := shapes.AsPoint(s); !ok {
		fmt.Println("not a point")
	}
}
