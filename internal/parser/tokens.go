package parser

import "github.com/opal-lang/mython/internal/token"

func (p *Parser) cur() token.Token { return p.lex.Current() }

func (p *Parser) pos() token.Position { return p.lex.Current().Pos }

func (p *Parser) advance() { p.lex.Next() }

func (p *Parser) checkLex() error {
	if p.cur().Type == token.ILLEGAL {
		return p.lex.LastError()
	}
	return nil
}

func (p *Parser) atChar(ch byte) bool {
	t := p.cur()
	return t.Type == token.CHAR && t.Ch == ch
}

// expect asserts and consumes a non-Char token type.
func (p *Parser) expect(t token.Type) (token.Token, error) {
	tok, err := p.lex.Expect(t)
	if err != nil {
		return token.Token{}, err
	}
	p.advance()
	if err := p.checkLex(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// expectChar asserts and consumes Char{ch}.
func (p *Parser) expectChar(ch byte) error {
	if err := p.lex.ExpectChar(ch); err != nil {
		return err
	}
	p.advance()
	return p.checkLex()
}

func (p *Parser) expectIdent() (string, error) {
	tok, err := p.expect(token.IDENT)
	if err != nil {
		return "", err
	}
	return tok.Str, nil
}
