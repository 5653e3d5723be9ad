package main

import (
	"fmt"

	"example.com/derive/pkg"
)

func main() {
	a := pkg.Rect{Width: 1, Height: 2}
	b := a.Clone()
	fmt.Println(a.Equal(b))
	fmt.Printf("%#v\n", a)
	fmt.Println(a, pkg.Point{})
}
