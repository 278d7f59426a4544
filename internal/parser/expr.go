package parser

import (
	"github.com/opal-lang/mython/internal/ast"
	"github.com/opal-lang/mython/internal/object"
	"github.com/opal-lang/mython/internal/token"
)

// parseExpr is the entry point for the full precedence chain: or, and,
// not (prefix), comparisons (non-associative), + -, * /, unary -,
// postfix .field/.method(args)/call.
func (p *Parser) parseExpr() (ast.Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == token.OR {
		pos := p.pos()
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewOr(pos, left, right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == token.AND {
		pos := p.pos()
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = ast.NewAnd(pos, left, right)
	}
	return left, nil
}

func (p *Parser) parseNot() (ast.Node, error) {
	if p.cur().Type == token.NOT {
		pos := p.pos()
		p.advance()
		arg, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Position: pos, Arg: arg}, nil
	}
	return p.parseComparison()
}

// parseComparison is non-associative: at most one comparator per level.
func (p *Parser) parseComparison() (ast.Node, error) {
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}

	pos := p.pos()
	cur := p.cur()
	var ctor func(token.Position, ast.Node, ast.Node) *ast.Comparison
	switch {
	case cur.Type == token.EQ:
		ctor = ast.NewEqual
	case cur.Type == token.NOTEQ:
		ctor = ast.NewNotEqual
	case cur.Type == token.LESSOREQ:
		ctor = ast.NewLessOrEqual
	case cur.Type == token.GREATEROREQ:
		ctor = ast.NewGreaterOrEqual
	case cur.Type == token.CHAR && cur.Ch == '<':
		ctor = ast.NewLess
	case cur.Type == token.CHAR && cur.Ch == '>':
		ctor = ast.NewGreater
	default:
		return left, nil
	}
	p.advance()
	right, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	return ctor(pos, left, right), nil
}

func (p *Parser) parseAddSub() (ast.Node, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for p.atChar('+') || p.atChar('-') {
		op := p.cur().Ch
		pos := p.pos()
		p.advance()
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			left = ast.NewAdd(pos, left, right)
		} else {
			left = ast.NewSub(pos, left, right)
		}
	}
	return left, nil
}

func (p *Parser) parseMulDiv() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.atChar('*') || p.atChar('/') {
		op := p.cur().Ch
		pos := p.pos()
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			left = ast.NewMult(pos, left, right)
		} else {
			left = ast.NewDiv(pos, left, right)
		}
	}
	return left, nil
}

// parseUnary desugars unary minus into 0 - operand; Mython's AST has no
// dedicated negation node, and the original grammar has none either.
func (p *Parser) parseUnary() (ast.Node, error) {
	if p.atChar('-') {
		pos := p.pos()
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewSub(pos, ast.NewNumericConst(pos, 0), operand), nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ast.Node, error) {
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	if err := p.checkLex(); err != nil {
		return nil, err
	}
	tok := p.cur()
	pos := tok.Pos

	switch tok.Type {
	case token.NUMBER:
		p.advance()
		return ast.NewNumericConst(pos, int32(tok.Num)), nil
	case token.STRING:
		p.advance()
		return ast.NewStringConst(pos, tok.Str), nil
	case token.TRUE:
		p.advance()
		return ast.NewBoolConst(pos, true), nil
	case token.FALSE:
		p.advance()
		return ast.NewBoolConst(pos, false), nil
	case token.NONE:
		p.advance()
		return &ast.Const{Position: pos, Value: object.None}, nil
	case token.IDENT:
		return p.parseIdentExpr()
	case token.CHAR:
		if tok.Ch == '(' {
			p.advance()
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, p.errorf("unexpected token %s in expression", tok.Type)
}

// parseIdentExpr parses an identifier chain in expression context,
// folding a plain dotted path into a VariableValue.
func (p *Parser) parseIdentExpr() (ast.Node, error) {
	pos := p.pos()
	ids, node, err := p.parseIdentChain()
	if err != nil {
		return nil, err
	}
	if node != nil {
		return node, nil
	}
	return ast.NewVariableValue(pos, ids...), nil
}

// parseIdentChain parses `Id`, `Id.Id.Id`, `Id(args)` (class
// instantiation, or str(expr)), and `Id.method(args)` chains. Exactly
// one of the two return values is populated: ids for a plain dotted
// path with no calls, node once a call has occurred anywhere in the
// chain.
func (p *Parser) parseIdentChain() ([]string, ast.Node, error) {
	pos := p.pos()
	name, err := p.expectIdent()
	if err != nil {
		return nil, nil, err
	}

	if p.atChar('(') {
		args, err := p.parseArgs()
		if err != nil {
			return nil, nil, err
		}
		var node ast.Node
		if name == "str" {
			if len(args) != 1 {
				return nil, nil, p.errorf("str() takes exactly one argument, got %d", len(args))
			}
			node = &ast.Stringify{Position: pos, Arg: args[0]}
		} else {
			class, ok := p.classes[name]
			if !ok {
				return nil, nil, p.errorf("unknown class %q", name)
			}
			node = &ast.NewInstance{Position: pos, Class: class, ClassName: name, Args: args}
		}
		chained, err := p.chainFrom(node)
		return nil, chained, err
	}

	ids := []string{name}
	for p.atChar('.') {
		p.advance()
		seg, err := p.expectIdent()
		if err != nil {
			return nil, nil, err
		}
		if p.atChar('(') {
			args, err := p.parseArgs()
			if err != nil {
				return nil, nil, err
			}
			call := &ast.MethodCall{Position: pos, Object: ast.NewVariableValue(pos, ids...), Method: seg, Args: args}
			chained, err := p.chainFrom(call)
			return nil, chained, err
		}
		ids = append(ids, seg)
	}
	return ids, nil, nil
}

// chainFrom continues consuming further `.method(args)` postfix calls
// off an already-built node (e.g. `a.b().c()`). Plain field access after
// a call result isn't supported.
func (p *Parser) chainFrom(node ast.Node) (ast.Node, error) {
	for p.atChar('.') {
		p.advance()
		seg, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if !p.atChar('(') {
			return nil, p.errorf("field access on a call result is not supported")
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		node = &ast.MethodCall{Position: node.Pos(), Object: node, Method: seg, Args: args}
	}
	return node, nil
}

func (p *Parser) parseArgs() ([]ast.Node, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var args []ast.Node
	if !p.atChar(')') {
		for {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, e)
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
	return args, nil
}
