// Package parser turns a token stream into an internal/ast tree,
// registering classes and resolving parents as it goes so that every
// class reference it wires into a NewInstance or ClassDefinition node is
// already fully built.
package parser

import (
	"fmt"

	"github.com/opal-lang/mython/internal/ast"
	"github.com/opal-lang/mython/internal/lexer"
	"github.com/opal-lang/mython/internal/object"
	"github.com/opal-lang/mython/internal/token"
)

// Parser is single-use: construct with New, call ParseProgram once.
type Parser struct {
	lex     *lexer.Lexer
	src     []byte
	classes map[string]*object.ClassDef
}

func New(src []byte) *Parser {
	return &Parser{lex: lexer.New(src), src: src, classes: map[string]*object.ClassDef{}}
}

// ParseProgram consumes the whole token stream and returns the program
// body as a single Compound.
func (p *Parser) ParseProgram() (*ast.Compound, error) {
	if err := p.checkLex(); err != nil {
		return nil, err
	}
	pos := p.pos()
	var stmts []ast.Node
	for p.cur().Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return ast.NewCompound(pos, stmts...), nil
}

func (p *Parser) parseStatement() (ast.Node, error) {
	if err := p.checkLex(); err != nil {
		return nil, err
	}
	switch p.cur().Type {
	case token.CLASS:
		return p.parseClassDef()
	case token.IF:
		return p.parseIfStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.PRINT:
		return p.parsePrintStatement()
	case token.IDENT:
		return p.parseIdentStatement()
	default:
		return nil, p.errorf("unexpected token %s at statement start", p.cur().Type)
	}
}

func (p *Parser) parseClassDef() (ast.Node, error) {
	pos := p.pos()
	p.advance() // class
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	var parent *object.ClassDef
	if p.atChar('(') {
		p.advance()
		parentName, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		var ok bool
		parent, ok = p.classes[parentName]
		if !ok {
			return nil, p.errorf("unknown base class %q", parentName)
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}

	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.NEWLINE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.INDENT); err != nil {
		return nil, err
	}

	var methods []*object.Method
	for p.cur().Type != token.DEDENT {
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}

	class := object.NewClassDef(name, parent, methods)
	p.classes[name] = class
	return &ast.ClassDefinition{Position: pos, Name: name, Class: object.FromClass(class)}, nil
}

func (p *Parser) parseMethodDef() (*object.Method, error) {
	if err := p.checkLex(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DEF); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var params []string
	if !p.atChar(')') {
		for {
			param, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			if param == "self" {
				return nil, p.errorf("%q must not be declared as a formal parameter, it is bound by the call site", "self")
			}
			params = append(params, param)
			if p.atChar(',') {
				p.advance()
				continue
			}
			break
		}
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.NEWLINE); err != nil {
		return nil, err
	}
	bodyPos := p.pos()
	if _, err := p.expect(token.INDENT); err != nil {
		return nil, err
	}
	var stmts []ast.Node
	for p.cur().Type != token.DEDENT {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}
	body := ast.NewCompound(bodyPos, stmts...)
	return &object.Method{Name: name, Params: params, Body: &ast.MethodBody{Position: bodyPos, Body: body}}, nil
}

func (p *Parser) parseIfStatement() (ast.Node, error) {
	pos := p.pos()
	p.advance() // if
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	thenNode, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseNode ast.Node
	if p.cur().Type == token.ELSE {
		p.advance()
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		elseNode, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfElse{Position: pos, Cond: cond, Then: thenNode, Else: elseNode}, nil
}

// parseBlock consumes `Newline Indent stmt+ Dedent` and returns the
// statements as a Compound.
func (p *Parser) parseBlock() (ast.Node, error) {
	if _, err := p.expect(token.NEWLINE); err != nil {
		return nil, err
	}
	pos := p.pos()
	if _, err := p.expect(token.INDENT); err != nil {
		return nil, err
	}
	var stmts []ast.Node
	for p.cur().Type != token.DEDENT {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}
	return ast.NewCompound(pos, stmts...), nil
}

func (p *Parser) parseReturnStatement() (ast.Node, error) {
	pos := p.pos()
	p.advance() // return
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectNewlineEnd(); err != nil {
		return nil, err
	}
	return &ast.Return{Position: pos, Expr: expr}, nil
}

func (p *Parser) parsePrintStatement() (ast.Node, error) {
	pos := p.pos()
	p.advance() // print
	var args []ast.Node
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	args = append(args, arg)
	for p.atChar(',') {
		p.advance()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if err := p.expectNewlineEnd(); err != nil {
		return nil, err
	}
	return ast.NewPrint(pos, args...), nil
}

// parseIdentStatement handles the three statement shapes that start with
// a bare identifier: plain assignment, field assignment, and a bare
// expression statement (typically a method call kept for side effects).
func (p *Parser) parseIdentStatement() (ast.Node, error) {
	pos := p.pos()
	ids, node, err := p.parseIdentChain()
	if err != nil {
		return nil, err
	}

	if p.atChar('=') {
		if node != nil {
			return nil, p.errorf("cannot assign to a call result")
		}
		p.advance()
		rvalue, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectNewlineEnd(); err != nil {
			return nil, err
		}
		if len(ids) == 1 {
			return &ast.Assignment{Position: pos, Name: ids[0], RValue: rvalue}, nil
		}
		objPath := ast.NewVariableValue(pos, ids[:len(ids)-1]...)
		return &ast.FieldAssignment{Position: pos, ObjectPath: objPath, Field: ids[len(ids)-1], RValue: rvalue}, nil
	}

	var stmt ast.Node
	if node != nil {
		stmt = node
	} else {
		stmt = ast.NewVariableValue(pos, ids...)
	}
	if err := p.expectNewlineEnd(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) expectNewlineEnd() error {
	_, err := p.expect(token.NEWLINE)
	return err
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &Error{Message: fmt.Sprintf(format, args...), Pos: p.pos(), Line: p.lex.CurrentLineText()}
}
