// Package parser implements a hand-written recursive-descent parser over
// pkg/lexer's token stream, producing pkg/ast nodes. It keeps the
// teacher's wrapper shape (NewParser, ParseProgram) and error style
// without depending on any compiled grammar: Mython has no tree-sitter
// grammar anywhere in the retrieved pack, so the parser is built the way
// spec.md itself calls for — hand-written, driven directly off the
// lexer's off-side-rule token stream.
package parser

import (
	"mython-go/pkg/ast"
	"mython-go/pkg/lexer"
	"mython-go/pkg/token"
)

// Parser consumes tokens one at a time from an underlying Lexer and
// builds an AST by recursive descent.
type Parser struct {
	lex *lexer.Lexer
}

// NewParser tokenizes src and positions the parser at its first token.
func NewParser(src string) (*Parser, error) {
	lex, err := lexer.New(src)
	if err != nil {
		return nil, err
	}
	return &Parser{lex: lex}, nil
}

// ParseProgram parses the whole token stream as a top-level statement
// sequence and returns it as a single Compound, matching spec.md's
// "a program is a sequence of indentation-delimited statements".
func ParseProgram(src string) (*ast.Compound, error) {
	p, err := NewParser(src)
	if err != nil {
		return nil, err
	}
	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != token.Eof {
		return nil, errorf("unexpected trailing token %s", p.cur())
	}
	return &ast.Compound{Statements: stmts}, nil
}

func (p *Parser) cur() token.Token { return p.lex.Current() }

func (p *Parser) advance() error {
	_, err := p.lex.Next()
	return err
}

func (p *Parser) expect(k token.Kind) error {
	if p.cur().Kind != k {
		return errorf("expected %s, got %s", k, p.cur())
	}
	return nil
}

// expectAdvance requires the current token to have kind k, then advances
// past it.
func (p *Parser) expectAdvance(k token.Kind) error {
	if err := p.expect(k); err != nil {
		return err
	}
	return p.advance()
}

func (p *Parser) expectChar(c byte) error {
	if p.cur().Kind != token.Char || p.cur().ChValue != c {
		return errorf("expected %q, got %s", string(c), p.cur())
	}
	return nil
}

func (p *Parser) expectCharAdvance(c byte) error {
	if err := p.expectChar(c); err != nil {
		return err
	}
	return p.advance()
}

func (p *Parser) atChar(c byte) bool {
	return p.cur().Kind == token.Char && p.cur().ChValue == c
}

// parseStatements parses statements until a DEDENT or EOF is reached,
// consuming each simple statement's trailing NEWLINE (a class or if
// statement ends with its block's DEDENT, its last NEWLINE already
// consumed inside the block), and is shared by both the top-level
// program and parseBlock's indented bodies.
func (p *Parser) parseStatements() ([]ast.Node, error) {
	var stmts []ast.Node
	for p.cur().Kind != token.Dedent && p.cur().Kind != token.Eof {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		switch stmt.(type) {
		case *ast.ClassDefinition, *ast.IfElse:
			continue
		}
		if err := p.expectAdvance(token.Newline); err != nil {
			return nil, err
		}
	}
	return stmts, nil
}

// parseBlock parses an INDENT, a statement sequence, and the matching
// DEDENT, returning the sequence as a Compound.
func (p *Parser) parseBlock() (*ast.Compound, error) {
	if err := p.expectAdvance(token.Indent); err != nil {
		return nil, err
	}
	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if err := p.expectAdvance(token.Dedent); err != nil {
		return nil, err
	}
	return &ast.Compound{Statements: stmts}, nil
}

func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.cur().Kind {
	case token.Class:
		return p.parseClassDef()
	case token.If:
		return p.parseIfElse()
	case token.Print:
		return p.parsePrint()
	case token.Return:
		return p.parseReturn()
	default:
		return p.parseAssignmentOrExprStatement()
	}
}

func (p *Parser) parsePrint() (ast.Node, error) {
	if err := p.advance(); err != nil { // consume 'print'
		return nil, err
	}
	var args []ast.Node
	if p.cur().Kind != token.Newline {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		for p.atChar(',') {
			if err := p.advance(); err != nil {
				return nil, err
			}
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	return &ast.Print{Args: args}, nil
}

func (p *Parser) parseReturn() (ast.Node, error) {
	if err := p.advance(); err != nil { // consume 'return'
		return nil, err
	}
	if p.cur().Kind == token.Newline {
		return &ast.Return{Expr: ast.None()}, nil
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Return{Expr: expr}, nil
}

func (p *Parser) parseIfElse() (ast.Node, error) {
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectCharAdvance(':'); err != nil {
		return nil, err
	}
	if err := p.expectAdvance(token.Newline); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var els ast.Node
	if p.cur().Kind == token.Else {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectCharAdvance(':'); err != nil {
			return nil, err
		}
		if err := p.expectAdvance(token.Newline); err != nil {
			return nil, err
		}
		elseBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		els = elseBlock
	}
	return &ast.IfElse{Cond: cond, Then: then, Else: els}, nil
}

// parseClassDef parses `class Name[(Parent)]:` followed by an indented
// sequence of method definitions — the only statement kind a class body
// may contain.
func (p *Parser) parseClassDef() (ast.Node, error) {
	if err := p.advance(); err != nil { // consume 'class'
		return nil, err
	}
	if err := p.expect(token.Id); err != nil {
		return nil, err
	}
	name := p.cur().Str
	if err := p.advance(); err != nil {
		return nil, err
	}

	var parent string
	if p.atChar('(') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(token.Id); err != nil {
			return nil, err
		}
		parent = p.cur().Str
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectCharAdvance(')'); err != nil {
			return nil, err
		}
	}

	if err := p.expectCharAdvance(':'); err != nil {
		return nil, err
	}
	if err := p.expectAdvance(token.Newline); err != nil {
		return nil, err
	}
	if err := p.expectAdvance(token.Indent); err != nil {
		return nil, err
	}

	var methods []*ast.MethodDef
	for p.cur().Kind == token.Def {
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}

	if err := p.expectAdvance(token.Dedent); err != nil {
		return nil, err
	}
	return &ast.ClassDefinition{Name: name, Parent: parent, Methods: methods}, nil
}

func (p *Parser) parseMethodDef() (*ast.MethodDef, error) {
	if err := p.advance(); err != nil { // consume 'def'
		return nil, err
	}
	if err := p.expect(token.Id); err != nil {
		return nil, err
	}
	name := p.cur().Str
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectCharAdvance('('); err != nil {
		return nil, err
	}
	var params []string
	if !p.atChar(')') {
		for {
			if err := p.expect(token.Id); err != nil {
				return nil, err
			}
			params = append(params, p.cur().Str)
			if err := p.advance(); err != nil {
				return nil, err
			}
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
	if err := p.expectCharAdvance(':'); err != nil {
		return nil, err
	}
	if err := p.expectAdvance(token.Newline); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.MethodDef{Name: name, Params: params, Body: body}, nil
}

// parseAssignmentOrExprStatement parses a leading identifier chain and
// either finds '=' (an assignment or field assignment) or treats the
// chain/call already parsed as a complete expression statement, such as
// a bare method-call statement (`obj.method(args)`) used for its side
// effect alone.
func (p *Parser) parseAssignmentOrExprStatement() (ast.Node, error) {
	expr, err := p.parseChainOrCall()
	if err != nil {
		return nil, err
	}
	if p.atChar('=') {
		variable, ok := expr.(*ast.VariableValue)
		if !ok {
			return nil, errorf("left-hand side of assignment must be a name or field")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if len(variable.Chain) == 1 {
			return &ast.Assignment{Name: variable.Chain[0], Rhs: rhs}, nil
		}
		target := &ast.VariableValue{Chain: variable.Chain[:len(variable.Chain)-1]}
		field := variable.Chain[len(variable.Chain)-1]
		return &ast.FieldAssignment{Target: target, Field: field, Rhs: rhs}, nil
	}
	return expr, nil
}
