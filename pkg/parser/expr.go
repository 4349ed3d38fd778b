package parser

import (
	"mython-go/pkg/ast"
	"mython-go/pkg/token"
)

// Operator precedence, lowest to highest: or, and, not, comparison,
// additive (+ -), multiplicative (* /), unary minus, atom. Mython has no
// operator table in spec.md beyond the AST node shapes themselves; this
// ordering is the conventional one implied by them.

func (p *Parser) parseExpr() (ast.Node, error) { return p.parseOr() }

func (p *Parser) parseOr() (ast.Node, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Or {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Or{Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseAnd() (ast.Node, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.And {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = &ast.And{Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseNot() (ast.Node, error) {
	if p.cur().Kind == token.Not {
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Arg: arg}, nil
	}
	return p.parseComparison()
}

var compareOps = map[token.Kind]ast.CompareOp{
	token.Eq:          ast.OpEq,
	token.NotEq:       ast.OpNotEq,
	token.LessOrEq:    ast.OpLessEq,
	token.GreaterOrEq: ast.OpGreaterEq,
}

func (p *Parser) parseComparison() (ast.Node, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if op, ok := compareOps[p.cur().Kind]; ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{Op: op, Lhs: lhs, Rhs: rhs}, nil
	}
	if p.atChar('<') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{Op: ast.OpLess, Lhs: lhs, Rhs: rhs}, nil
	}
	if p.atChar('>') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{Op: ast.OpGreater, Lhs: lhs, Rhs: rhs}, nil
	}
	return lhs, nil
}

func (p *Parser) parseAdditive() (ast.Node, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.atChar('+') || p.atChar('-') {
		op := p.cur().ChValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			lhs = &ast.Add{Lhs: lhs, Rhs: rhs}
		} else {
			lhs = &ast.Sub{Lhs: lhs, Rhs: rhs}
		}
	}
	return lhs, nil
}

func (p *Parser) parseTerm() (ast.Node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.atChar('*') || p.atChar('/') {
		op := p.cur().ChValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			lhs = &ast.Mult{Lhs: lhs, Rhs: rhs}
		} else {
			lhs = &ast.Div{Lhs: lhs, Rhs: rhs}
		}
	}
	return lhs, nil
}

// parseUnary desugars a leading '-' into Sub(0, operand): the AST has no
// dedicated negation node, and the value model's only way to produce a
// negative Number is subtraction, matching spec.md's note that "unary
// minus is an operator" rather than part of a number literal.
func (p *Parser) parseUnary() (ast.Node, error) {
	if p.atChar('-') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Sub{Lhs: ast.Num(0), Rhs: operand}, nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (ast.Node, error) {
	switch p.cur().Kind {
	case token.Number:
		n := p.cur().Num
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Num(n), nil
	case token.String:
		s := p.cur().Str
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Str(s), nil
	case token.True:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Bool(true), nil
	case token.False:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Bool(false), nil
	case token.None:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.None(), nil
	case token.Id:
		return p.parseChainOrCall()
	case token.Char:
		if p.cur().ChValue == '(' {
			if err := p.advance(); err != nil {
				return nil, err
			}
			inner, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectCharAdvance(')'); err != nil {
				return nil, err
			}
			return inner, nil
		}
	}
	return nil, errorf("unexpected token %s in expression", p.cur())
}

// parseArgs parses a parenthesized, comma-separated argument list with
// the opening '(' already consumed, and consumes the closing ')'.
func (p *Parser) parseArgs() ([]ast.Node, error) {
	var args []ast.Node
	if !p.atChar(')') {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.atChar(',') {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if err := p.expectCharAdvance(')'); err != nil {
		return nil, err
	}
	return args, nil
}

// parseChainOrCall parses a leading identifier and everything that can
// follow it: a bare name, a dotted field chain (VariableValue), a method
// call on that chain (MethodCall), or — when the name is directly
// followed by '(' with no dot — either a NewInstance (the class-call
// convention spec.md's example `A('hi')` uses) or, when the name is the
// literal builtin "str", a Stringify, per spec.md's Non-goals note that
// str() is the one builtin beyond print.
func (p *Parser) parseChainOrCall() (ast.Node, error) {
	if err := p.expect(token.Id); err != nil {
		return nil, err
	}
	name := p.cur().Str
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.atChar('(') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if name == "str" {
			if len(args) != 1 {
				return nil, errorf("str() takes exactly one argument, got %d", len(args))
			}
			return &ast.Stringify{Arg: args[0]}, nil
		}
		return &ast.NewInstance{Class: ast.Var(name), Args: args}, nil
	}

	chain := []string{name}
	for p.atChar('.') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(token.Id); err != nil {
			return nil, err
		}
		field := p.cur().Str
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.atChar('(') {
			if err := p.advance(); err != nil {
				return nil, err
			}
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return &ast.MethodCall{Obj: &ast.VariableValue{Chain: chain}, Name: field, Args: args}, nil
		}
		chain = append(chain, field)
	}
	return &ast.VariableValue{Chain: chain}, nil
}
