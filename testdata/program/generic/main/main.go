package main

import (
	"fmt"

	"example.com/generic/pkg"
)

func main() {
	m := pkg.Just[string]{F0: "hi"}.AsMaybe()
	j, ok := pkg.AsJust(m)
	fmt.Println(ok, j.F0)

	_, none := pkg.AsNone(m)
	fmt.Println(none)
}
