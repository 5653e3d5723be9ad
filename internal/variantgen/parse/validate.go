package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
)

// Validate checks for usages outside expected paths. It collects all errors
// instead of stopping at the first error.
//
// Many validation rules are implemented in the expected paths by narrow parsing
// functions. But some rules need to be checked globally. That's what this
// function does.
func (p *Parser) Validate(sums map[token.Pos]*Sum) error {
	knownCalls := make(map[token.Pos]struct{}, len(sums))
	for _, sum := range sums {
		knownCalls[sum.Call.Pos()] = struct{}{}
	}

	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validateDirectiveUsages(file, knownCalls))
	}
	for _, sum := range sums {
		errs = errors.Join(errs, p.validateModuleExports(sum))
	}
	return errs
}

// validateConstraint checks if files importing "github.com/govariant/variantgen"
// have "//go:build variantgen" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	// Find variantgen import
	var variantgenImport *ast.ImportSpec
	for _, imp := range file.Imports {
		if IsVariantgenImport(strings.Trim(imp.Path.Value, `"`)) {
			variantgenImport = imp
			break
		}
	}
	if variantgenImport == nil {
		return nil // No variantgen import found
	}

	// Check for "//go:build variantgen" constraint
	if hasGoBuildVariantgen(file) {
		return nil // Constraint satisfied
	}

	// This file imports variantgen but has no "//go:build variantgen" constraint
	return p.errParse(variantgenImport, `file must have "//go:build variantgen" constraint when importing variantgen`)
}

// validateDirectiveUsages checks illegal usages of variantgen directives.
//
// Sum is only legal as a blank-assigned package-level declaration, and options
// are only legal inlined in a Sum call. Anything else would leave a variantgen
// reference behind after code generation.
func (p *Parser) validateDirectiveUsages(file *ast.File, knownCalls map[token.Pos]struct{}) error {
	if !hasGoBuildVariantgen(file) {
		return nil
	}

	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		switch node := node.(type) {
		case *ast.ValueSpec, *ast.AssignStmt:
			ast.Inspect(node, func(node ast.Node) bool {
				call, ok := node.(*ast.CallExpr)
				if !ok {
					return true
				}

				directive, ok := p.GetDirective(call)
				if !ok {
					return true
				}

				if directive == "Sum" {
					if _, ok := knownCalls[call.Pos()]; ok {
						// A parsed package-level declaration. Its options are
						// checked by ParseConfig.
						return false
					}
					err := p.errParse(call, "Sum must be declared at package level")
					errs = errors.Join(errs, err)
					return false
				}

				err := p.errParse(call, "cannot assign %s to variable", directive)
				errs = errors.Join(errs, err)
				return false
			})
			return false

		case *ast.CallExpr:
			// A directive call in any other context, such as a bare expression
			// statement, would survive merging into the generated file.
			directive, ok := p.GetDirective(node)
			if !ok {
				return true
			}

			if directive == "Sum" {
				err := p.errParse(node, "Sum must be declared at package level")
				errs = errors.Join(errs, err)
				return false
			}

			err := p.errParse(node, "%s must be inlined in a Sum declaration", directive)
			errs = errors.Join(errs, err)
			return false
		}
		return true
	})
	return errs
}

// validateModuleExports checks that everything a generated subpackage must
// refer to in the sum's package is exported.
func (p *Parser) validateModuleExports(sum *Sum) error {
	module := sum.Config.Module
	if module == "" {
		return nil
	}

	var errs error
	if !sum.Obj.Exported() {
		err := p.errConfig(sum, "sum type %o must be exported to generate into module %q", sum.Obj, module)
		errs = errors.Join(errs, err)
	}

	for _, variant := range sum.Variants {
		if _, ok := sum.Config.Skips[variant.Name]; ok {
			continue
		}
		if !token.IsExported(variant.Name) {
			err := p.errConfig(variant, "variant %s must be exported to generate into module %q", variant.Name, module)
			errs = errors.Join(errs, err)
		}

		// Field types are spelled out again in the subpackage, so every named
		// type from the sum's package must be reachable from there.
		for _, field := range variant.Fields {
			ast.Inspect(field.Expr, func(node ast.Node) bool {
				id, ok := node.(*ast.Ident)
				if !ok {
					return true
				}

				obj, ok := p.Pkg().TypesInfo.ObjectOf(id).(*types.TypeName)
				if !ok || obj.Pkg() == nil || obj.Pkg().Path() != p.pkg.PkgPath || obj.Exported() {
					return true
				}
				if _, ok := obj.Type().(*types.TypeParam); ok {
					return true
				}

				err := p.errConfig(field, "type %o must be exported to generate into module %q", obj, module)
				errs = errors.Join(errs, err)
				return true
			})
		}
	}

	for _, marker := range sum.Config.Markers {
		if marker.Obj.Pkg() != nil && marker.Obj.Pkg().Path() == p.pkg.PkgPath && !marker.Obj.Exported() {
			err := p.errConfig(marker, "marker %o must be exported to generate into module %q", marker.Obj, module)
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
