package emit

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/govariant/variantgen/internal/codefmt"
	"github.com/govariant/variantgen/internal/variantgen/parse"
)

// deriveEmitter describes a derivable method and how to write it.
type deriveEmitter struct {
	// Method is the name of the method added to the product.
	Method string

	// Comparable requires every field of the variant to be comparable.
	Comparable bool

	Write func(w *codefmt.Writer, pr *Product)
}

// derives is the registry of derivable methods. The order is the order in
// which unknown-derive diagnostics list the supported names.
var derives = linkedhashmap.New()

func init() {
	derives.Put("String", deriveEmitter{Method: "String", Write: writeDeriveString})
	derives.Put("GoString", deriveEmitter{Method: "GoString", Write: writeDeriveGoString})
	derives.Put("Equal", deriveEmitter{Method: "Equal", Comparable: true, Write: writeDeriveEqual})
	derives.Put("Clone", deriveEmitter{Method: "Clone", Write: writeDeriveClone})
}

func lookupDerive(name string) (deriveEmitter, bool) {
	v, ok := derives.Get(name)
	if !ok {
		return deriveEmitter{}, false
	}
	return v.(deriveEmitter), true
}

func supportedDerives() string {
	var names []string
	for _, key := range derives.Keys() {
		names = append(names, key.(string))
	}
	return strings.Join(names, ", ")
}

func writeDeriveString(w *codefmt.Writer, pr *Product) {
	fmtName := w.Import("fmt", "fmt")
	_, use := pr.typeParams(w)

	w.Printf("// String implements %s.Stringer.\n", fmtName)
	w.Printf("func (v %s%s) String() string {\n", pr.Name, use)
	switch pr.Variant.Shape {
	case parse.Unit:
		w.Printf("\treturn %q\n", pr.Variant.Name)
	case parse.Tuple:
		w.Printf("\treturn %s.Sprintf(%q, %s)\n", fmtName, pr.Variant.Name+"("+fieldVerbs(pr, "%v", ", ")+")", fieldArgs(pr, "v"))
	case parse.Struct:
		w.Printf("\treturn %s.Sprintf(%q, %s)\n", fmtName, pr.Variant.Name+"{"+namedFieldVerbs(pr, "%v")+"}", fieldArgs(pr, "v"))
	}
	w.Printf("}\n\n")
}

func writeDeriveGoString(w *codefmt.Writer, pr *Product) {
	fmtName := w.Import("fmt", "fmt")
	_, use := pr.typeParams(w)

	qualified := pr.PkgName + "." + pr.Name
	w.Printf("// GoString implements %s.GoStringer.\n", fmtName)
	w.Printf("func (v %s%s) GoString() string {\n", pr.Name, use)
	if pr.Variant.Shape == parse.Unit {
		w.Printf("\treturn %q\n", qualified+"{}")
	} else {
		w.Printf("\treturn %s.Sprintf(%q, %s)\n", fmtName, qualified+"{"+namedFieldVerbs(pr, "%#v")+"}", fieldArgs(pr, "v"))
	}
	w.Printf("}\n\n")
}

func writeDeriveEqual(w *codefmt.Writer, pr *Product) {
	_, use := pr.typeParams(w)

	w.Printf("// Equal reports whether v and u hold the same values.\n")
	w.Printf("func (v %s%s) Equal(u %s%s) bool {\n", pr.Name, use, pr.Name, use)
	if pr.Variant.Shape == parse.Unit {
		w.Printf("\treturn true\n")
	} else {
		var terms []string
		for _, field := range pr.Variant.Fields {
			terms = append(terms, "v."+field.Name+" == u."+field.Name)
		}
		w.Printf("\treturn %s\n", strings.Join(terms, " && "))
	}
	w.Printf("}\n\n")
}

func writeDeriveClone(w *codefmt.Writer, pr *Product) {
	_, use := pr.typeParams(w)

	w.Printf("// Clone returns a shallow copy of v. Slice, map, and pointer fields\n")
	w.Printf("// alias the original.\n")
	w.Printf("func (v %s%s) Clone() %s%s {\n", pr.Name, use, pr.Name, use)
	w.Printf("\treturn v\n")
	w.Printf("}\n\n")
}

// fieldVerbs renders one verb per field joined by sep, such as "%v, %v".
func fieldVerbs(pr *Product, verb, sep string) string {
	verbs := make([]string, len(pr.Variant.Fields))
	for i := range verbs {
		verbs[i] = verb
	}
	return strings.Join(verbs, sep)
}

// namedFieldVerbs renders "Name: %v" pairs joined by ", ".
func namedFieldVerbs(pr *Product, verb string) string {
	pairs := make([]string, len(pr.Variant.Fields))
	for i, field := range pr.Variant.Fields {
		pairs[i] = field.Name + ": " + verb
	}
	return strings.Join(pairs, ", ")
}

// fieldArgs renders "recv.F0, recv.F1" for the fields.
func fieldArgs(pr *Product, recv string) string {
	args := make([]string, len(pr.Variant.Fields))
	for i, field := range pr.Variant.Fields {
		args[i] = recv + "." + field.Name
	}
	return strings.Join(args, ", ")
}
