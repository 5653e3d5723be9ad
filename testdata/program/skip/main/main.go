package main

import (
	"fmt"

	"example.com/skip/pkg"
)

func main() {
	e := pkg.Created{Id: 1}.AsEvent()
	if _, ok := pkg.AsDeleted(e); !ok {
		fmt.Println("not deleted")
	}
	fmt.Printf("%T\n", e)
}
