package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"

	"github.com/govariant/variantgen/internal/codefmt"
)

// Shape classifies how a variant carries its payload.
type Shape int

const (
	// Unit carries no payload; the variant method has no parameters.
	Unit Shape = iota

	// Tuple carries positional payload; every parameter is unnamed or blank.
	// Fields are named F0, F1, and so on.
	Tuple

	// Struct carries named payload; every parameter is named. Field names are
	// kept, upper-cased when unexported.
	Struct
)

func (s Shape) String() string {
	switch s {
	case Unit:
		return "unit"
	case Tuple:
		return "tuple"
	case Struct:
		return "struct"
	}
	return "unknown"
}

// Variant is a single variant of a sum type, declared as an interface method.
type Variant struct {
	// Name is the method name, which becomes the product type name.
	Name string

	// Shape classifies the payload of the variant.
	Shape Shape

	// Fields are the product fields in declaration order. Empty for Unit.
	Fields []Field

	// Doc is the documentation of the method, copied onto the product type.
	Doc *ast.CommentGroup

	// Method is the interface method field in the AST.
	Method *ast.Field

	pos token.Pos
	end token.Pos
}

func (v *Variant) Pos() token.Pos { return v.pos }
func (v *Variant) End() token.Pos { return v.end }

// Field is a single field of a variant payload.
type Field struct {
	// Name is the product field name. Always a valid exported or upper-cased
	// identifier.
	Name string

	// Expr is the type expression from the method signature.
	Expr ast.Expr

	pos token.Pos
}

func (f Field) Pos() token.Pos { return f.pos }

// ParseVariant classifies an interface method as a variant. The method must
// have no results, must not be variadic, and must not mix named and unnamed
// parameters.
func (p *Parser) ParseVariant(sum *Sum, name *ast.Ident, method *ast.Field) (*Variant, error) {
	fn, ok := method.Type.(*ast.FuncType)
	if !ok {
		// Interface methods always carry a FuncType in well-typed code.
		return nil, p.errParse(method, "cannot use %c as variant of %o", method.Type, sum.Obj)
	}

	variant := &Variant{
		Name:   name.Name,
		Doc:    method.Doc,
		Method: method,
		pos:    name.Pos(),
		end:    name.End(),
	}

	var errs error
	if fn.Results != nil && len(fn.Results.List) > 0 {
		errs = errors.Join(errs, p.errParse(fn.Results, "variant %s of %o must not declare results", variant.Name, sum.Obj))
	}

	var named, unnamed int
	for _, param := range fn.Params.List {
		if _, ok := param.Type.(*ast.Ellipsis); ok {
			errs = errors.Join(errs, p.errParse(param, "variant %s of %o must not be variadic", variant.Name, sum.Obj))
			continue
		}

		if len(param.Names) == 0 {
			unnamed++
			variant.Fields = append(variant.Fields, Field{
				Name: fmt.Sprintf("F%d", len(variant.Fields)),
				Expr: param.Type,
				pos:  param.Pos(),
			})
			continue
		}

		for _, id := range param.Names {
			if id.Name == "_" {
				unnamed++
				variant.Fields = append(variant.Fields, Field{
					Name: fmt.Sprintf("F%d", len(variant.Fields)),
					Expr: param.Type,
					pos:  id.Pos(),
				})
				continue
			}

			named++
			variant.Fields = append(variant.Fields, Field{
				Name: codefmt.ExportName(id.Name),
				Expr: param.Type,
				pos:  id.Pos(),
			})
		}
	}

	if named != 0 && unnamed != 0 {
		errs = errors.Join(errs, p.errParse(fn.Params, "variant %s of %o cannot mix named and unnamed fields", variant.Name, sum.Obj))
	}

	switch {
	case len(variant.Fields) == 0:
		variant.Shape = Unit
	case named == 0:
		variant.Shape = Tuple
	default:
		variant.Shape = Struct
	}

	if errs != nil {
		return nil, errs
	}
	return variant, nil
}
