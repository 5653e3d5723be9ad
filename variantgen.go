// Package variantgen provides directives for sum type code generation.
//
// Variantgen turns a closed set of variants, declared once as an interface,
// into one struct type per variant together with the conversions between the
// variants and the sum. Type-safe directives catch configuration errors at
// compile time, while malformed declarations are diagnosed at generation time.
//
// To start with variantgen, add a build constraint to files containing
// variantgen directives:
//
//	//go:build variantgen
//
// A sum type is declared as an interface whose methods name the variants. A
// method without parameters declares a unit variant, a method with unnamed
// parameters declares a tuple variant with fields F0, F1, and so on, and a
// method with named parameters declares a struct variant keeping the field
// names. The interface is registered with the [Sum] directive:
//
//	// source:
//	type Shape interface {
//		Point()
//		Circle(float64)
//		Rect(width, height float64)
//	}
//
//	var _ = variantgen.Sum[Shape]()
//
//	// generated: (simplified)
//	type Shape interface{ AsShape() Shape }
//
//	type Point struct{}
//	type Circle struct{ F0 float64 }
//	type Rect struct{ Width, Height float64 }
//
//	func (v Circle) AsShape() Shape { return v }
//	func AsCircle(e Shape) (Circle, bool) { v, ok := e.(Circle); return v, ok }
//
// Every variant struct widens into the sum through the AsShape method, and
// narrows back through the generated As function. Narrowing reports false
// instead of failing when the sum holds another variant.
//
// After declaring sums, run the variantgen command. It will generate
// variantgen_gen.go for your package:
//
//	go run github.com/govariant/variantgen/cmd/variantgen
//
// # Derives
//
// Common methods can be derived for every variant with [Derive], or for a
// single variant with [DeriveFor]. Variant-level derives extend the
// declaration-level ones:
//
//	var _ = variantgen.Sum[Shape](
//		variantgen.Derive("String", "Clone"),
//		variantgen.DeriveFor(Shape.Rect, "Equal"),
//	)
//
// The supported derives are String, GoString, Equal, and Clone. Clone is a
// shallow value copy, so slice, map, and pointer fields alias the original.
// Unknown derive names are rejected at generation time.
//
// # Modules
//
// Variants can be generated into a subpackage with [InModule], keeping the
// sum interface in the declaring package:
//
//	var _ = variantgen.Sum[Shape](variantgen.InModule("shapes"))
//
// The generated subpackage imports the declaring package, so the sum and its
// variants must be exported.
//
// # Markers
//
// Variants can implement marker interfaces with [ImplementMarkers]. A marker
// must be a named interface with a single method taking no parameters and
// returning no results. Each variant gets an empty method implementing it:
//
//	type Renderable interface{ isRenderable() }
//
//	var _ = variantgen.Sum[Shape](
//		variantgen.ImplementMarkers(Renderable(nil)),
//	)
package variantgen

// declaration is the opaque result of [Sum]. It only exists to be assigned to
// the blank identifier.
type declaration struct{}

// Option configures a [Sum] declaration. Options must be inlined in the Sum
// call; they cannot be assigned to variables.
type Option struct{ _ declaration }

// Sum declares the interface type T as a sum type. Each method of T declares
// a variant; the code generator replaces T's methods with a single widening
// method and emits one struct type per variant.
//
// The declaration must be assigned to the blank identifier at package level,
// in a file constrained by the variantgen build tag:
//
//	var _ = variantgen.Sum[Shape]()
//
// A generic sum is declared through any instantiation of it; generation
// targets the generic declaration:
//
//	var _ = variantgen.Sum[Tree[int]]()
func Sum[T any](opts ...Option) declaration {
	panic("variantgen: not generated")
}

// Derive derives the named methods for every variant of the sum. The
// supported names are String, GoString, Equal, and Clone. Clone is a shallow
// value copy; fields with reference types alias the original.
func Derive(names ...string) Option {
	panic("variantgen: not generated")
}

// DeriveFor derives the named methods for a single variant, referred to by
// method expression:
//
//	variantgen.DeriveFor(Shape.Rect, "Equal")
//
// The derives extend the ones declared with [Derive].
func DeriveFor(variant any, names ...string) Option {
	panic("variantgen: not generated")
}

// Skip excludes a variant from generation, referred to by method expression:
//
//	variantgen.Skip(Shape.Legacy)
//
// No struct type or conversion is generated for a skipped variant.
func Skip(variant any) Option {
	panic("variantgen: not generated")
}

// InModule generates the variant structs into a subpackage with the given
// name instead of the declaring package. The sum interface stays in the
// declaring package, so it and its variants must be exported. The name must
// be a valid unexported identifier.
func InModule(name string) Option {
	panic("variantgen: not generated")
}

// ImplementMarkers makes every variant implement the given marker interfaces
// with an empty method. Markers are passed as typed nils:
//
//	variantgen.ImplementMarkers(Renderable(nil))
//
// A marker must be a named interface declaring exactly one method that takes
// no parameters and returns no results.
func ImplementMarkers(markers ...any) Option {
	panic("variantgen: not generated")
}
