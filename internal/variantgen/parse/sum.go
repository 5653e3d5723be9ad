package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"github.com/govariant/variantgen/internal/typeinfo"
)

// Sum is a sum type declaration discovered in the parsed package. It holds the
// named interface whose methods declare the variants, together with the
// configuration given to the declaring directive.
type Sum struct {
	// Name is the name of the sum interface type.
	Name string

	// Obj is the type name object of the sum interface declaration.
	Obj *types.TypeName

	// Type is the type given as the directive's type argument. For a generic
	// sum it is an instantiation; Origin is the uninstantiated declaration.
	Type   typeinfo.Type
	Origin *types.Named

	// Generic reports whether the sum declaration has type parameters.
	Generic bool

	// Spec and Decl locate the interface declaration in the AST. File is the
	// file containing it.
	Spec *ast.TypeSpec
	Decl *ast.GenDecl
	File *ast.File

	// Doc is the documentation of the interface declaration, preferring the
	// TypeSpec's own doc group over the GenDecl's.
	Doc *ast.CommentGroup

	// Variants are the interface methods in source order, including skipped
	// ones.
	Variants []*Variant

	// Config holds the options given to the declaring directive.
	Config Config

	// Call is the declaring directive call expression.
	Call *ast.CallExpr
}

func (s *Sum) Pos() token.Pos { return s.Spec.Name.Pos() }
func (s *Sum) End() token.Pos { return s.Spec.Name.End() }

// Variant returns the variant with the given name, or nil.
func (s *Sum) Variant(name string) *Variant {
	for _, v := range s.Variants {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// ParseSums finds and parses all package-level Sum declarations in the parsed
// files. The result maps the position of each sum interface declaration to its
// parsed form.
func (p *Parser) ParseSums() (map[token.Pos]*Sum, error) {
	var errs error
	sums := make(map[token.Pos]*Sum)

	for _, file := range p.VariantgenGoFiles() {
		for id, call := range p.FindSums(file) {
			sum, err := p.ParseSum(call)
			errs = errors.Join(errs, err)
			if sum == nil {
				continue
			}

			if id.Name != "_" {
				err := p.errParse(id, "Sum must be assigned to the blank identifier")
				errs = errors.Join(errs, err)
			}

			if prev, ok := sums[sum.Obj.Pos()]; ok {
				err := p.errConfig(call, "duplicate Sum declaration for %o\n\tprevious declaration at %b", sum.Obj, prev.Call.Pos())
				errs = errors.Join(errs, err)
				continue
			}
			sums[sum.Obj.Pos()] = sum
		}
	}

	return sums, errs
}

// FindSums collects and iterates package-level Sum directive calls. It does
// not collect inline calls.
func (p *Parser) FindSums(file *ast.File) iter.Seq2[*ast.Ident, *ast.CallExpr] {
	return func(yield func(*ast.Ident, *ast.CallExpr) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				val, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for i, id := range val.Names {
					if len(val.Values) <= i {
						break
					}

					call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
					if !ok || !p.IsDirective(call, "Sum") {
						continue
					}

					if !yield(id, call) {
						return
					}
				}
			}
		}
	}
}

// ParseSum parses a Sum directive call expression into a [Sum]. The type
// argument must name an interface type declared in the same package, in a file
// with the "//go:build variantgen" constraint.
func (p *Parser) ParseSum(call *ast.CallExpr) (*Sum, error) {
	idx, ok := ast.Unparen(call.Fun).(*ast.IndexExpr)
	if !ok {
		return nil, p.errParse(call, "Sum needs an explicit type argument")
	}
	targ := idx.Index

	t := typeinfo.TypeOf(p.Pkg().TypesInfo.TypeOf(targ))
	if !t.IsNamed() || !t.IsInterface() {
		return nil, p.errParse(targ, "cannot use %c as sum type; need named interface type", targ)
	}

	origin := t.Named.Origin()
	obj := origin.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != p.pkg.PkgPath {
		return nil, p.errParse(targ, "sum type %o must be declared in this package", obj)
	}

	spec, gen, file := p.findTypeSpec(obj.Pos())
	if spec == nil {
		// The object resolved to this package but its declaration is missing
		// from the syntax trees, such as for a generated file.
		return nil, p.errParse(targ, "cannot find declaration of sum type %o", obj)
	}
	if !hasGoBuildVariantgen(file) {
		return nil, p.errParse(targ, `sum type %o must be declared in a file with "//go:build variantgen" constraint`, obj)
	}

	iface, ok := spec.Type.(*ast.InterfaceType)
	if !ok {
		return nil, p.errParse(spec, "sum type %o must be declared as an interface literal", obj)
	}

	doc := spec.Doc
	if doc == nil && len(gen.Specs) == 1 {
		doc = gen.Doc
	}

	sum := &Sum{
		Name:    obj.Name(),
		Obj:     obj,
		Type:    t,
		Origin:  origin,
		Generic: typeinfo.TypeOf(origin).IsGeneric(),
		Spec:    spec,
		Decl:    gen,
		File:    file,
		Doc:     doc,
		Call:    call,
	}

	var errs error
	for _, method := range iface.Methods.List {
		if len(method.Names) == 0 {
			errs = errors.Join(errs, p.errParse(method, "cannot embed %c in sum type %o", method.Type, obj))
			continue
		}

		for _, name := range method.Names {
			variant, err := p.ParseVariant(sum, name, method)
			errs = errors.Join(errs, err)
			if variant != nil {
				sum.Variants = append(sum.Variants, variant)
			}
		}
	}

	if err := p.ParseConfig(sum, &sum.Config, call.Args); err != nil {
		errs = errors.Join(errs, err)
	}

	return sum, errs
}

// findTypeSpec locates the type declaration at the given position.
func (p *Parser) findTypeSpec(pos token.Pos) (*ast.TypeSpec, *ast.GenDecl, *ast.File) {
	for _, file := range p.Pkg().Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				spec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				if spec.Name.Pos() == pos {
					return spec, gen, file
				}
			}
		}
	}
	return nil, nil, nil
}
