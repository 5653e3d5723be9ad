package parse

import (
	"go/ast"
	"go/token"
	"strconv"
)

// parseStringArg parses an option argument that must be a string literal.
// Computed strings are rejected because options must be readable in place.
func parseStringArg(p *Parser, expr ast.Expr) (string, error) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", p.errParse(expr, "%s is not string literal", expr)
	}

	v, _ := strconv.Unquote(lit.Value)
	return v, nil
}

func needArgs1(p *Parser, call *ast.CallExpr) (ast.Expr, error) {
	if len(call.Args) != 1 {
		return nil, p.errParse(call, "need 1 parameter")
	}
	return call.Args[0], nil
}

func needArgsAtLeast1(p *Parser, call *ast.CallExpr) ([]ast.Expr, error) {
	if len(call.Args) == 0 {
		return nil, p.errParse(call, "need at least 1 parameter")
	}
	return call.Args, nil
}

func needArgsAtLeast2(p *Parser, call *ast.CallExpr) (ast.Expr, []ast.Expr, error) {
	if len(call.Args) < 2 {
		return nil, nil, p.errParse(call, "need at least 2 parameters")
	}
	return call.Args[0], call.Args[1:], nil
}
