package variantgeninternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/govariant/variantgen/internal/codefmt"
	"github.com/govariant/variantgen/internal/variantgen/emit"
	"github.com/govariant/variantgen/internal/variantgen/parse"
)

// Variantgen generates variant code for the target package. Call [Build] and
// then [Generate] to get the generated code. All potential errors are returned
// by [Build]. Once [Build] succeeds, [Generate] never fails.
type Variantgen struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	sums      []*parse.Sum
	sumsByPos map[token.Pos]*parse.Sum
	declCalls map[token.Pos]struct{}
	products  map[*parse.Sum][]*emit.Product
	modules   map[string]*module
	modOrder  []string
}

// module is a generated subpackage holding the products of sums declared with
// a module option. It has its own output buffer, writer, and namespace.
type module struct {
	name string
	buf  *bytes.Buffer
	w    *codefmt.Writer
	ns   codefmt.NS
}

// New creates a new [Variantgen] for the given package. If the package does
// not satisfy the requirements, an error is returned. The package must have
// its Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Variantgen, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Variantgen{
		p:        parser,
		ns:       codefmt.NewNS(pkg.Types.Scope()),
		buf:      &buf,
		w:        codefmt.NewWriter(&buf, pkg),
		products: make(map[*parse.Sum][]*emit.Product),
		modules:  make(map[string]*module),
	}, nil
}

// Build prepares code generation by parsing sum declarations and planning
// products. All potential errors are returned by this method. It must be
// called before [Generate].
func (vg *Variantgen) Build() error {
	sums, errs := vg.p.ParseSums()
	errs = errors.Join(errs, vg.p.Validate(sums))
	if errs != nil {
		return errs
	}
	if len(sums) == 0 {
		// No sum declarations found
		return nil
	}

	vg.sumsByPos = sums
	vg.declCalls = make(map[token.Pos]struct{}, len(sums))

	vg.sums = make([]*parse.Sum, 0, len(sums))
	for _, sum := range sums {
		vg.sums = append(vg.sums, sum)
		vg.declCalls[sum.Call.Pos()] = struct{}{}
	}
	slices.SortFunc(vg.sums, func(a, b *parse.Sum) int {
		if a.Pos() < b.Pos() {
			return -1
		}
		if a.Pos() > b.Pos() {
			return 1
		}
		return 0
	})

	for _, sum := range vg.sums {
		var products []*emit.Product
		var err error

		if name := sum.Config.Module; name != "" {
			mod := vg.module(name)
			products, err = emit.Build(vg.p.Pkg(), sum, name, true, mod.ns)
		} else {
			products, err = emit.Build(vg.p.Pkg(), sum, vg.p.Pkg().Name, false, vg.ns)
		}

		errs = errors.Join(errs, err)
		vg.products[sum] = products
	}

	return errs
}

// module returns the generated subpackage with the given name, creating it on
// first use. Multiple sums may share a module.
func (vg *Variantgen) module(name string) *module {
	if mod, ok := vg.modules[name]; ok {
		return mod
	}

	buf := new(bytes.Buffer)
	ns := make(codefmt.NS)
	ns.Reserve(name)

	mod := &module{
		name: name,
		buf:  buf,
		w:    codefmt.NewSubpkgWriter(buf, vg.p.Pkg(), vg.p.Pkg().PkgPath+"/"+name),
		ns:   ns,
	}
	vg.modules[name] = mod
	vg.modOrder = append(vg.modOrder, name)
	return mod
}

// Generate generates variant code for the package. It must be called after
// [Build] succeeds. The result maps file names relative to the package
// directory to their contents; sums declared with a module option generate
// into a subdirectory named after the module.
func (vg *Variantgen) Generate(outFile string) map[string][]byte {
	outs := make(map[string][]byte)
	if len(vg.sums) == 0 {
		return outs
	}

	vg.writeSumCode()
	vg.mergeCode()

	outs[outFile] = vg.frameCode(vg.buf, vg.w, vg.p.Pkg().Name)
	for _, name := range vg.modOrder {
		mod := vg.modules[name]
		outs[filepath.Join(name, outFile)] = vg.frameCode(mod.buf, mod.w, name)
	}
	return outs
}

// writeSumCode writes the rewritten sum interfaces and their products in
// source order.
func (vg *Variantgen) writeSumCode() {
	vg.w.Printf("// variantgen: sum types and variants\n\n")

	for _, sum := range vg.sums {
		emit.WriteSumCode(vg.w, sum)

		for _, pr := range vg.products[sum] {
			w := vg.w
			if pr.External {
				mod := vg.modules[sum.Config.Module]
				if mod.buf.Len() == 0 {
					codefmt.Fprintf(nil, mod.buf, "// variantgen: variants generated for %s\n\n", vg.p.Pkg().PkgPath)
				}
				w = mod.w
			}
			pr.WriteCode(w)
		}
	}
}

// mergeCode copies non-variantgen code from the source files tagged with
// "//go:build variantgen". It erases sum interfaces and directives to remove
// any references to the variantgen package.
func (vg *Variantgen) mergeCode() {
	for _, file := range vg.p.VariantgenGoFiles() {
		name := filepath.Base(vg.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			// Erase sum interface declarations; they are re-emitted with the
			// variant methods replaced by the widening method.
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.TypeSpec)
				if !ok {
					return true
				}
				if _, ok := vg.sumsByPos[spec.Name.Pos()]; ok {
					c.Delete()
				}
				return false
			}, nil).(ast.Decl)

			// Erase Sum declarations
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.ValueSpec)
				if !ok {
					return true
				}

				// Find non-variantgen values
				var names []*ast.Ident
				var values []ast.Expr
				for i := range spec.Names {
					if i >= len(spec.Values) {
						// Enum consts may not have values
						names = append(names, spec.Names[i])
						continue
					}

					if _, ok := vg.declCalls[spec.Values[i].Pos()]; !ok {
						names = append(names, spec.Names[i])
						values = append(values, spec.Values[i])
					}
				}

				if len(names) == 0 {
					// Input:  var ( _ = variantgen.Sum[T](...) )
					// Output: var ()
					c.Delete()
				} else {
					// Input:  var ( _, n = variantgen.Sum[T](...), 42 )
					// Output: var ( n = 42 )
					c.Replace(&ast.ValueSpec{
						Doc:     spec.Doc,
						Names:   names,
						Type:    spec.Type,
						Values:  values,
						Comment: spec.Comment,
					})
				}

				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok {
				if len(gen.Specs) == 0 {
					continue
				}
			}

			if first {
				fmt.Fprintf(vg.buf, "// %s:\n\n", name)
				first = false
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(vg.w, decl)

			// Write rewritten declaration code
			printer.Fprint(vg.buf, vg.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(vg.buf, "\n\n")
		}
	}
}

func (vg *Variantgen) frameCode(src *bytes.Buffer, w *codefmt.Writer, pkgName string) []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !variantgen\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/govariant/variantgen%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", pkgName)

	if len(w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range w.Imports() {
			// Check for remaining variantgen import
			if imp.Path() == "github.com/govariant/variantgen" {
				fmt.Println("variantgen import remains")
			}

			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, src)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
