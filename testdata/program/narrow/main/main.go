package main

import (
	"fmt"

	"example.com/narrow/pkg"
)

func main() {
	e := pkg.Circle{F0: 2.5}.AsShape()

	// Narrowing to the wrong variant reports false and yields a zero value.
	r, ok := pkg.AsRect(e)
	fmt.Println(ok, r.Width, r.Height)

	// The original value is untouched.
	c, _ := pkg.AsCircle(e)
	fmt.Println(c.F0)
}
