//go:build variantgen

package modexportfield

import "github.com/govariant/variantgen"

type hidden struct{ n int }

type Shape interface {
	Point()
	Circle(hidden)         // want `type hidden must be exported to generate into module "shapes"`
	Rect(corners []hidden) // want `type hidden must be exported to generate into module "shapes"`
	Label(text string)
}

var _ = variantgen.Sum[Shape](variantgen.InModule("shapes"))
