package parser

import (
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"regexp"

	"github.com/pkg/errors"
)

var intSuffixRe = regexp.MustCompile(`\b(0[xX][0-9a-fA-F]+|[0-9]+)[uUlL]+\b`)

// evalInt evaluates the integer constant expression of an enumerator.
// C integer expressions share their syntax with Go once literal suffixes
// are dropped, so the Go expression parser does the tokenizing.
func evalInt(expr string, lookup func(string) (int64, bool)) (int64, error) {
	src := intSuffixRe.ReplaceAllString(expr, "$1")

	node, err := parser.ParseExpr(src)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q", expr)
	}

	v, err := evalNode(node, lookup)
	if err != nil {
		return 0, errors.Wrapf(err, "evaluating %q", expr)
	}

	n, exact := constant.Int64Val(v)
	if !exact {
		return 0, errors.Errorf("%q does not fit in 64 bits", expr)
	}

	return n, nil
}

func evalNode(node ast.Expr, lookup func(string) (int64, bool)) (constant.Value, error) {
	switch n := node.(type) {
	case *ast.BasicLit:
		if n.Kind != token.INT {
			return nil, errors.Errorf("unsupported literal %s", n.Value)
		}
		return constant.MakeFromLiteral(n.Value, n.Kind, 0), nil

	case *ast.Ident:
		v, ok := lookup(n.Name)
		if !ok {
			return nil, errors.Errorf("unknown constant %s", n.Name)
		}
		return constant.MakeInt64(v), nil

	case *ast.ParenExpr:
		return evalNode(n.X, lookup)

	case *ast.UnaryExpr:
		x, err := evalNode(n.X, lookup)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case token.SUB, token.ADD:
			return constant.UnaryOp(n.Op, x, 0), nil
		case token.XOR, token.TILDE:
			// Go spells bitwise complement as unary ^.
			return constant.UnaryOp(token.XOR, x, 0), nil
		}
		return nil, errors.Errorf("unsupported operator %s", n.Op)

	case *ast.BinaryExpr:
		x, err := evalNode(n.X, lookup)
		if err != nil {
			return nil, err
		}
		y, err := evalNode(n.Y, lookup)
		if err != nil {
			return nil, err
		}

		switch n.Op {
		case token.SHL, token.SHR:
			s, ok := constant.Uint64Val(y)
			if !ok || s > 63 {
				return nil, errors.Errorf("invalid shift count %s", y)
			}
			return constant.Shift(x, n.Op, uint(s)), nil
		case token.QUO:
			if constant.Sign(y) == 0 {
				return nil, errors.New("division by zero")
			}
			return constant.BinaryOp(x, token.QUO_ASSIGN, y), nil
		case token.ADD, token.SUB, token.MUL, token.REM, token.AND, token.OR, token.XOR, token.AND_NOT:
			return constant.BinaryOp(x, n.Op, y), nil
		}
		return nil, errors.Errorf("unsupported operator %s", n.Op)
	}

	return nil, errors.Errorf("unsupported expression %T", node)
}
