// Package variantgenanalysis adapts the variantgen diagnostics to the Go
// analysis protocol, for use by linters.
package variantgenanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/govariant/variantgen/internal/codefmt"
	variantgeninternal "github.com/govariant/variantgen/internal/variantgen"
)

// Analyzer validates the usage of variantgen in the package.
var Analyzer = &analysis.Analyzer{
	Name: "variantgen",
	Doc:  "linter for variantgen usage",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	vg, err := variantgeninternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := vg.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Unwrap().Error(),
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
			}
		}
	}

	return nil, nil
}
