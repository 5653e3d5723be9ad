package main

import (
	"fmt"

	"example.com/markers/pkg"
)

func main() {
	var v any = pkg.Circle{Radius: 1}
	_, ok := v.(pkg.Drawable)
	fmt.Println(ok)

	var d pkg.Drawable = pkg.Point{}
	d.Draw()
	fmt.Println("drawn")
}
