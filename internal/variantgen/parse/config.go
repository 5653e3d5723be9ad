package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/govariant/variantgen/internal/codefmt"
	"github.com/govariant/variantgen/internal/typeinfo"
)

// Config holds the options given to a Sum declaration.
type Config struct {
	// Derives holds derive names applying to every variant, in declaration
	// order. DeriveAt records where each name was first mentioned, for
	// diagnostics.
	Derives  *linkedhashset.Set
	DeriveAt map[string]token.Pos

	// VariantDerives holds additional derive names per variant. They extend
	// Derives; they never replace it.
	VariantDerives  map[string]*linkedhashset.Set
	VariantDeriveAt map[string]token.Pos

	// Skips holds variants excluded from generation, keyed by variant name.
	Skips map[string]token.Pos

	// Module is the name of the subpackage to generate into. Empty means the
	// sum's own package.
	Module   string
	ModuleAt token.Pos

	// Markers are interfaces every product must implement with an empty
	// method.
	Markers []Marker
}

// Marker is a marker interface every product implements.
type Marker struct {
	Type       typeinfo.Type
	Obj        *types.TypeName
	MethodName string

	pos token.Pos
	end token.Pos
}

func (m Marker) Pos() token.Pos { return m.pos }
func (m Marker) End() token.Pos { return m.end }

// ParseConfig parses the option arguments of a Sum declaration into cfg. It
// collects all errors instead of stopping at the first error.
func (p *Parser) ParseConfig(sum *Sum, cfg *Config, args []ast.Expr) error {
	cfg.Derives = linkedhashset.New()
	cfg.DeriveAt = make(map[string]token.Pos)
	cfg.VariantDerives = make(map[string]*linkedhashset.Set)
	cfg.VariantDeriveAt = make(map[string]token.Pos)
	cfg.Skips = make(map[string]token.Pos)

	var errs error
	for _, arg := range args {
		if _, ok := arg.(*ast.Ident); ok {
			err := p.errParse(arg, "option must be inlined, not assigned to variable")
			errs = errors.Join(errs, err)
			continue
		}

		call, ok := ast.Unparen(arg).(*ast.CallExpr)
		if !ok {
			// Probably, this case is unreachable because every option type is
			// unexported. The only way to create a valid option is to call an
			// option directive function, or assign it to a variable. The
			// latter one is caught above.
			err := p.errParse(arg, "cannot use %c as option", arg)
			errs = errors.Join(errs, err)
			continue
		}

		if err := p.ParseOption(sum, cfg, call); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	// A skipped variant has no product, so there is nothing to derive for.
	for name, at := range cfg.VariantDeriveAt {
		if _, ok := cfg.Skips[name]; ok {
			err := p.errConfig(codefmt.Pos(at), "cannot derive for skipped variant %s", name)
			errs = errors.Join(errs, err)
		}
	}

	return errs
}

func (p *Parser) ParseOption(sum *Sum, cfg *Config, call *ast.CallExpr) error {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil || callee.Pkg() == nil || !IsVariantgenImport(callee.Pkg().Path()) {
		return p.errParse(call, "option must be variantgen directive")
	}

	name := callee.Name()
	switch name {
	case "Derive":
		return p.ParseOptionDerive(cfg, call)
	case "DeriveFor":
		return p.ParseOptionDeriveFor(sum, cfg, call)
	case "Skip":
		return p.ParseOptionSkip(sum, cfg, call)
	case "InModule":
		return p.ParseOptionInModule(cfg, call)
	case "ImplementMarkers":
		return p.ParseOptionImplementMarkers(cfg, call)
	}

	return p.errConfig(call.Fun, "%s is not supported option", name)
}

func (p *Parser) ParseOptionDerive(cfg *Config, call *ast.CallExpr) error {
	args, err := needArgsAtLeast1(p, call)
	if err != nil {
		return err
	}

	var errs error
	for _, arg := range args {
		name, err := parseStringArg(p, arg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if name == "" {
			errs = errors.Join(errs, p.errConfig(arg, "derive name must not be empty"))
			continue
		}

		cfg.Derives.Add(name)
		if _, ok := cfg.DeriveAt[name]; !ok {
			cfg.DeriveAt[name] = arg.Pos()
		}
	}
	return errs
}

func (p *Parser) ParseOptionDeriveFor(sum *Sum, cfg *Config, call *ast.CallExpr) error {
	ref, rest, err := needArgsAtLeast2(p, call)
	if err != nil {
		return err
	}

	variant, err := p.ParseVariantRef(sum, ref)
	if err != nil {
		return err
	}

	set := cfg.VariantDerives[variant.Name]
	if set == nil {
		set = linkedhashset.New()
		cfg.VariantDerives[variant.Name] = set
		cfg.VariantDeriveAt[variant.Name] = call.Pos()
	}

	var errs error
	for _, arg := range rest {
		name, err := parseStringArg(p, arg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if name == "" {
			errs = errors.Join(errs, p.errConfig(arg, "derive name must not be empty"))
			continue
		}

		set.Add(name)
		if _, ok := cfg.DeriveAt[name]; !ok {
			cfg.DeriveAt[name] = arg.Pos()
		}
	}
	return errs
}

func (p *Parser) ParseOptionSkip(sum *Sum, cfg *Config, call *ast.CallExpr) error {
	ref, err := needArgs1(p, call)
	if err != nil {
		return err
	}

	variant, err := p.ParseVariantRef(sum, ref)
	if err != nil {
		return err
	}

	if _, ok := cfg.Skips[variant.Name]; ok {
		return p.errConfig(call, "variant %s already skipped", variant.Name)
	}

	cfg.Skips[variant.Name] = call.Pos()
	return nil
}

func (p *Parser) ParseOptionInModule(cfg *Config, call *ast.CallExpr) error {
	arg, err := needArgs1(p, call)
	if err != nil {
		return err
	}

	name, err := parseStringArg(p, arg)
	if err != nil {
		return err
	}

	if cfg.Module != "" {
		return p.errConfig(call, "module already configured")
	}

	if !token.IsIdentifier(name) || token.IsExported(name) || token.Lookup(name).IsKeyword() {
		return p.errConfig(arg, "%s is not valid module name; need unexported identifier", name)
	}

	cfg.Module = name
	cfg.ModuleAt = call.Pos()
	return nil
}

func (p *Parser) ParseOptionImplementMarkers(cfg *Config, call *ast.CallExpr) error {
	args, err := needArgsAtLeast1(p, call)
	if err != nil {
		return err
	}

	var errs error
	for _, arg := range args {
		conv, ok := ast.Unparen(arg).(*ast.CallExpr)
		if !ok || conv.Ellipsis.IsValid() || len(conv.Args) != 1 || !p.IsNil(conv.Args[0]) {
			errs = errors.Join(errs, p.errConfig(arg, "marker must be a typed nil like Marker(nil)"))
			continue
		}

		t := typeinfo.TypeOf(p.Pkg().TypesInfo.TypeOf(arg))
		if !t.IsNamed() || !t.IsInterface() {
			errs = errors.Join(errs, p.errConfig(arg, "cannot use %c as marker; need named interface type", arg))
			continue
		}

		iface := t.Interface
		if iface.NumMethods() != 1 {
			errs = errors.Join(errs, p.errConfig(arg, "marker %o must declare exactly one method", t))
			continue
		}

		method := iface.Method(0)
		sig := method.Signature()
		if sig.Params().Len() != 0 || sig.Results().Len() != 0 {
			errs = errors.Join(errs, p.errConfig(arg, "marker method %o must take no parameters and return no results", method))
			continue
		}
		if method.Pkg() != nil && method.Pkg().Path() != p.pkg.PkgPath && !method.Exported() {
			errs = errors.Join(errs, p.errConfig(arg, "cannot implement marker %o; method %s is unexported", t, method.Name()))
			continue
		}

		dup := false
		for _, prev := range cfg.Markers {
			if prev.Obj == t.Named.Obj() {
				errs = errors.Join(errs, p.errConfig(arg, "marker %o already configured", t))
				dup = true
				break
			}
		}
		if dup {
			continue
		}

		cfg.Markers = append(cfg.Markers, Marker{
			Type:       t,
			Obj:        t.Named.Obj(),
			MethodName: method.Name(),
			pos:        arg.Pos(),
			end:        arg.End(),
		})
	}
	return errs
}

// ParseVariantRef resolves a method expression like MyEnum.V to the variant it
// names.
func (p *Parser) ParseVariantRef(sum *Sum, expr ast.Expr) (*Variant, error) {
	sel, ok := ast.Unparen(expr).(*ast.SelectorExpr)
	if !ok {
		return nil, p.errParse(expr, "cannot use %c as variant; need method expression like %s.V", expr, sum.Name)
	}

	obj := p.Pkg().TypesInfo.ObjectOf(sel.Sel)
	if obj == nil {
		return nil, p.errParse(expr, "cannot resolve %c", expr)
	}

	for _, variant := range sum.Variants {
		if variant.Pos() == obj.Pos() {
			return variant, nil
		}
	}
	return nil, p.errParse(expr, "%s is not variant of %o", sel.Sel.Name, sum.Obj)
}
