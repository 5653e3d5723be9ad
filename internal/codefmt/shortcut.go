package codefmt

import (
	"go/token"
	"io"

	"golang.org/x/tools/go/packages"
)

func Fprintf(pkger Pkger, w io.Writer, format string, args ...any) (int, error) {
	return newByPkger(pkger).Fprintf(w, format, args...)
}

func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).Errorf(poser, format, args...)
}

// KindErrorf is a shorthand for [Formatter.KindErrorf].
func KindErrorf(pkger Pkger, kind error, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).KindErrorf(kind, poser, format, args...)
}

type pkger struct{ pkg *packages.Package }

func (p pkger) Pkg() *packages.Package { return p.pkg }
func Pkg(pkg *packages.Package) Pkger  { return pkger{pkg} }

type poser struct{ pos token.Pos }

func (p poser) Pos() token.Pos { return p.pos }
func Pos(pos token.Pos) Poser  { return poser{pos} }

