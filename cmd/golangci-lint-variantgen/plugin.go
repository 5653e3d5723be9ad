// golangcilintvariantgen package provides a plugin for golangci-lint to
// integrate the variantgen analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-variantgen binary that you can use to lint
// your Go code with the variantgen analyzer.
package golangcilintvariantgen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/govariant/variantgen/pkg/variantgenanalysis"
)

func init() {
	register.Plugin("variantgen", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return VariantgenLinter{}, nil
}

type VariantgenLinter struct{}

func (VariantgenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{variantgenanalysis.Analyzer}, nil
}

func (VariantgenLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
