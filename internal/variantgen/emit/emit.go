// Package emit plans and writes the generated code for parsed sum types: one
// product struct per retained variant with its widening method, narrowing
// function, derived methods, and marker methods.
package emit

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/govariant/variantgen/internal/codefmt"
	"github.com/govariant/variantgen/internal/variantgen/parse"
	"github.com/govariant/variantgen/pkg/variantgenerrors"
)

// Product is the generation plan for a single retained variant.
type Product struct {
	Sum     *parse.Sum
	Variant *parse.Variant

	// Name is the product type name; WidenName and NarrowName are the names
	// of the widening method and the narrowing function.
	Name       string
	WidenName  string
	NarrowName string

	// Derives are the resolved derive names in declaration order.
	Derives []string

	// Markers are the marker interfaces the product implements.
	Markers []parse.Marker

	// PkgName is the name of the package the product is generated into.
	// External reports that it differs from the sum's own package.
	PkgName  string
	External bool
}

func (pr *Product) Pos() token.Pos { return pr.Variant.Pos() }
func (pr *Product) End() token.Pos { return pr.Variant.End() }

func errConfig(pkg *packages.Package, poser codefmt.Poser, format string, args ...any) error {
	return codefmt.KindErrorf(codefmt.Pkg(pkg), variantgenerrors.ErrConfig, poser, format, args...)
}

// WidenName returns the name of the widening method of the given sum. It is
// also the single method of the rewritten sum interface.
func WidenName(sum *parse.Sum) string {
	return "As" + codefmt.ExportName(sum.Name)
}

func narrowName(variant *parse.Variant) string {
	if token.IsExported(variant.Name) {
		return "As" + variant.Name
	}
	return "as" + codefmt.ExportName(variant.Name)
}

// Build plans products for every retained variant of the sum. Names are
// reserved in ns, which must hold the declarations of the target package.
// It collects all errors instead of stopping at the first error.
func Build(pkg *packages.Package, sum *parse.Sum, pkgName string, external bool, ns codefmt.NS) ([]*Product, error) {
	var errs error
	var products []*Product

	cfg := sum.Config
	for _, variant := range sum.Variants {
		if _, ok := cfg.Skips[variant.Name]; ok {
			continue
		}

		pr := &Product{
			Sum:        sum,
			Variant:    variant,
			Name:       variant.Name,
			WidenName:  WidenName(sum),
			NarrowName: narrowName(variant),
			Markers:    cfg.Markers,
			PkgName:    pkgName,
			External:   external,
		}

		for _, name := range deriveNames(sum, variant) {
			emitter, ok := lookupDerive(name)
			if !ok {
				err := errConfig(pkg, codefmt.Pos(cfg.DeriveAt[name]), "unknown derive %s; supported derives are %s", name, supportedDerives())
				errs = errors.Join(errs, err)
				continue
			}

			if emitter.Comparable {
				for _, field := range variant.Fields {
					typ := pkg.TypesInfo.TypeOf(field.Expr)
					if typ != nil && !types.Comparable(typ) {
						err := errConfig(pkg, field, "cannot derive %s for variant %s; field %s of type %t is not comparable", name, variant.Name, field.Name, typ)
						errs = errors.Join(errs, err)
					}
				}
			}

			pr.Derives = append(pr.Derives, name)
		}

		if err := validateNames(pkg, pr, ns); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		products = append(products, pr)
	}

	return products, errs
}

// deriveNames resolves the derive set of a variant: the declaration-level
// derives extended by the variant-level ones, in declaration order.
func deriveNames(sum *parse.Sum, variant *parse.Variant) []string {
	var names []string
	seen := make(map[string]struct{})

	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	if sum.Config.Derives != nil {
		for _, v := range sum.Config.Derives.Values() {
			add(v.(string))
		}
	}
	if set := sum.Config.VariantDerives[variant.Name]; set != nil {
		for _, v := range set.Values() {
			add(v.(string))
		}
	}
	return names
}

// validateNames reserves the product's declaration names and rejects fields
// colliding with generated methods. Fields and methods share a namespace in
// Go, so a field named like a derived method cannot compile.
func validateNames(pkg *packages.Package, pr *Product, ns codefmt.NS) error {
	var errs error

	if ok := ns.Reserve(pr.Name); !ok {
		err := errConfig(pkg, pr, "cannot declare %s for variant %s; the name is already used", pr.Name, pr.Variant.Name)
		errs = errors.Join(errs, err)
	}
	if ok := ns.Reserve(pr.NarrowName); !ok {
		err := errConfig(pkg, pr, "cannot declare %s for variant %s; the name is already used", pr.NarrowName, pr.Variant.Name)
		errs = errors.Join(errs, err)
	}

	methods := map[string]struct{}{pr.WidenName: {}}
	for _, name := range pr.Derives {
		emitter, _ := lookupDerive(name)
		methods[emitter.Method] = struct{}{}
	}
	for _, marker := range pr.Markers {
		methods[marker.MethodName] = struct{}{}
	}

	for _, field := range pr.Variant.Fields {
		if _, ok := methods[field.Name]; ok {
			err := errConfig(pkg, field, "field %s of variant %s collides with a generated method", field.Name, pr.Variant.Name)
			errs = errors.Join(errs, err)
		}
	}

	return errs
}

// typeParams renders the sum's type parameter list for declarations and for
// uses. Both are empty for a non-generic sum.
func (pr *Product) typeParams(w *codefmt.Writer) (decl, use string) {
	tp := pr.Sum.Spec.TypeParams
	if tp == nil {
		return "", ""
	}

	var decls, uses []string
	for _, field := range tp.List {
		names := make([]string, len(field.Names))
		for i, id := range field.Names {
			names[i] = id.Name
		}
		constraint := w.Sprintf("%c", codefmt.RewriteImports(w, field.Type))
		decls = append(decls, strings.Join(names, ", ")+" "+constraint)
		uses = append(uses, names...)
	}
	return "[" + strings.Join(decls, ", ") + "]", "[" + strings.Join(uses, ", ") + "]"
}

// sumRef renders a reference to the sum type from the product's package.
func (pr *Product) sumRef(w *codefmt.Writer, use string) string {
	name := pr.Sum.Name
	if pr.External {
		qual := w.Import(pr.Sum.Obj.Pkg().Path(), pr.Sum.Obj.Pkg().Name())
		name = qual + "." + name
	}
	return name + use
}

// WriteSumCode writes the rewritten sum interface: the original declaration
// with its variant methods replaced by the single widening method.
func WriteSumCode(w *codefmt.Writer, sum *parse.Sum) {
	decl, use := typeParamsOf(w, sum)

	writeDoc(w, sum.Doc)
	w.Printf("type %s%s interface {\n", sum.Name, decl)
	w.Printf("\t%s() %s%s\n", WidenName(sum), sum.Name, use)
	w.Printf("}\n\n")
}

func typeParamsOf(w *codefmt.Writer, sum *parse.Sum) (decl, use string) {
	pr := Product{Sum: sum}
	return pr.typeParams(w)
}

// WriteCode writes all artifacts of the product: the struct, the widening
// method, the narrowing function, derived methods, and marker methods.
func (pr *Product) WriteCode(w *codefmt.Writer) {
	decl, use := pr.typeParams(w)
	sumRef := pr.sumRef(w, use)

	// Product struct
	writeDoc(w, pr.Variant.Doc)
	if len(pr.Variant.Fields) == 0 {
		w.Printf("type %s%s struct{}\n\n", pr.Name, decl)
	} else {
		w.Printf("type %s%s struct {\n", pr.Name, decl)
		for _, field := range pr.Variant.Fields {
			w.Printf("\t%s %c\n", field.Name, codefmt.RewriteImports(w, field.Expr))
		}
		w.Printf("}\n\n")
	}

	// Widening method
	w.Printf("// %s widens v into %s.\n", pr.WidenName, pr.Sum.Name)
	w.Printf("func (v %s%s) %s() %s {\n", pr.Name, use, pr.WidenName, sumRef)
	w.Printf("\treturn v\n")
	w.Printf("}\n\n")

	// Narrowing function
	w.Printf("// %s narrows e into %s. It reports false when e holds another\n// variant, leaving e untouched.\n", pr.NarrowName, pr.Name)
	w.Printf("func %s%s(e %s) (%s%s, bool) {\n", pr.NarrowName, decl, sumRef, pr.Name, use)
	w.Printf("\tv, ok := e.(%s%s)\n", pr.Name, use)
	w.Printf("\treturn v, ok\n")
	w.Printf("}\n\n")

	// Derived methods
	for _, name := range pr.Derives {
		emitter, _ := lookupDerive(name)
		emitter.Write(w, pr)
	}

	// Marker methods
	for _, marker := range pr.Markers {
		w.Printf("// %s marks %s as %t.\n", marker.MethodName, pr.Name, marker.Type)
		w.Printf("func (%s%s) %s() {}\n\n", pr.Name, use, marker.MethodName)

		if !pr.Sum.Generic {
			w.Printf("var _ %t = %s{}\n\n", marker.Type, pr.Name)
		}
	}
}

func writeDoc(w *codefmt.Writer, doc *ast.CommentGroup) {
	if doc == nil {
		return
	}
	for _, comment := range doc.List {
		w.Printf("%s\n", comment.Text)
	}
}
