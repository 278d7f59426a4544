// Package lexer tokenizes Mython source: character stream in, finite
// token stream out, with synthetic INDENT/DEDENT/NEWLINE tokens
// virtualizing the two-space off-side rule.
package lexer

import (
	"fmt"

	"github.com/opal-lang/mython/internal/asciiguard"
	"github.com/opal-lang/mython/internal/invariant"
	"github.com/opal-lang/mython/internal/token"
)

// Lexer scans a byte slice lazily, one token per Next() call. The zero
// value is not usable; construct with New.
type Lexer struct {
	input []byte
	pos   int
	line  int
	col   int

	oldDent  int
	currDent int

	cur            token.Token
	pendingIllegal *Error
}

// New constructs a Lexer over src and primes it with the first token, so
// Current() is valid immediately.
func New(src []byte) *Lexer {
	l := &Lexer{
		input: src,
		line:  1,
		col:   1,
		// The notional "previous" token is Newline - this is what makes leading indentation on line 1
		// count, per the tolerated-but-not-required open question (§9).
		cur: token.Token{Type: token.NEWLINE},
	}
	l.cur = l.produceNext()
	return l
}

// Current peeks at the current token without consuming it.
func (l *Lexer) Current() token.Token {
	return l.cur
}

// Next advances the lexer and returns the new current token.
func (l *Lexer) Next() token.Token {
	l.cur = l.produceNext()
	return l.cur
}

// Expect asserts the current token has type t, returning it or a LexerError.
func (l *Lexer) Expect(t token.Type) (token.Token, error) {
	if l.cur.Type != t {
		return token.Token{}, l.unexpected(t)
	}
	return l.cur, nil
}

// ExpectChar asserts the current token is Char{ch}.
func (l *Lexer) ExpectChar(ch byte) error {
	if l.cur.Type != token.CHAR || l.cur.Ch != ch {
		return l.unexpectedChar(ch)
	}
	return nil
}

// LastError returns the diagnostic behind the most recently produced
// Illegal token, or nil if the current token isn't Illegal. The caller
// (the parser's token loop) checks this immediately after Next()/New().
func (l *Lexer) LastError() error {
	if l.cur.Type != token.ILLEGAL || l.pendingIllegal == nil {
		return nil
	}
	return l.pendingIllegal
}

func (l *Lexer) unexpected(want token.Type) error {
	return &Error{
		Kind:    KindExpectation,
		Message: fmt.Sprintf("expected %s, got %s", want, l.cur.Type),
		Pos:     l.cur.Pos,
		Line:    l.currentLineText(),
	}
}

func (l *Lexer) unexpectedChar(want byte) error {
	return &Error{
		Kind:    KindExpectation,
		Message: fmt.Sprintf("expected '%c', got %s", want, l.cur.Type),
		Pos:     l.cur.Pos,
		Line:    l.currentLineText(),
	}
}

// CurrentLineText returns the full source line the current token sits
// on, for diagnostics built outside the lexer (e.g. the parser).
func (l *Lexer) CurrentLineText() string {
	return l.currentLineText()
}

func (l *Lexer) currentLineText() string {
	start := l.pos
	for start > 0 && l.input[start-1] != '\n' {
		start--
	}
	end := l.pos
	for end < len(l.input) && l.input[end] != '\n' {
		end++
	}
	return string(l.input[start:end])
}

// produceNext implements the token-production contract, including the
// end-of-stream drain: if the previous token was Newline or
// Dedent, keep emitting Dedent until old_dent reaches 0, then Eof; if the
// previous token was anything else, synthesize one Newline first.
func (l *Lexer) produceNext() token.Token {
	if l.pos >= len(l.input) {
		switch l.cur.Type {
		case token.EOF:
			return l.at(token.EOF)
		case token.NEWLINE, token.DEDENT:
			if l.oldDent > 0 {
				l.oldDent -= 2
				return l.at(token.DEDENT)
			}
			return l.at(token.EOF)
		default:
			return l.at(token.NEWLINE)
		}
	}
	return l.scan()
}

// scan is the character-stream-to-token core, mirroring the original
// ParseInput recursive structure as an explicit loop: skip whitespace
// (counting indentation only while the previous token was Newline),
// strip comments, collapse blank/comment-only lines without emitting
// Newline, converge old_dent toward curr_dent one step per call, and
// finally lex a real token.
func (l *Lexer) scan() token.Token {
	for {
		for l.pos < len(l.input) && l.input[l.pos] == ' ' {
			if l.cur.Type == token.NEWLINE {
				l.currDent++
			}
			l.advance()
		}

		if l.pos < len(l.input) && l.input[l.pos] == '#' {
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.advance()
			}
			if l.pos >= len(l.input) {
				return l.produceNext()
			}
		}

		if l.pos < len(l.input) && l.input[l.pos] == '\n' {
			wasNewline := l.cur.Type == token.NEWLINE
			tok := l.at(token.NEWLINE)
			l.advance()
			l.currDent = 0
			if !wasNewline {
				return tok
			}
			continue
		}

		invariant.NonNegativeEven(l.oldDent, "oldDent")
		if l.currDent > l.oldDent {
			l.oldDent += 2
			return l.at(token.INDENT)
		}
		if l.currDent < l.oldDent {
			l.oldDent -= 2
			return l.at(token.DEDENT)
		}

		if l.pos >= len(l.input) {
			return l.produceNext()
		}

		return l.lexReal()
	}
}

// lexReal lexes one real (non-structural) token at the current position.
func (l *Lexer) lexReal() token.Token {
	ch := l.input[l.pos]
	if ch >= 128 {
		line := l.currentLineText()
		offset := asciiguard.FirstOffender(line)
		invariant.Invariant(offset >= 0, "asciiguard must flag a byte >= 128")
		return l.illegal(&Error{
			Kind:    KindNonASCII,
			Message: fmt.Sprintf("byte 0x%02x is not ASCII", ch),
			Pos:     l.posNow(),
			Line:    line,
		})
	}

	switch {
	case ch == '\'' || ch == '"':
		return l.lexString(ch)
	case ch >= '0' && ch <= '9':
		return l.lexNumber()
	case isIdentStart(ch):
		return l.lexWord()
	}

	switch ch {
	case '+', '-', '*', '/', ',', '.', '(', ')', ':':
		pos := l.posNow()
		l.advance()
		return token.Token{Type: token.CHAR, Ch: ch, Pos: pos}
	case '=':
		return l.lexTwoOrChar('=', token.EQ, '=')
	case '<':
		return l.lexTwoOrChar('=', token.LESSOREQ, '<')
	case '>':
		return l.lexTwoOrChar('=', token.GREATEROREQ, '>')
	case '!':
		pos := l.posNow()
		l.advance()
		if l.pos < len(l.input) && l.input[l.pos] == '=' {
			l.advance()
			return token.Token{Type: token.NOTEQ, Pos: pos}
		}
		return l.illegalAt(pos, &Error{
			Kind:    KindStrayBang,
			Message: "stray '!' (did you mean '!='?)",
			Pos:     pos,
			Line:    l.currentLineText(),
		})
	}

	pos := l.posNow()
	l.advance()
	return l.illegalAt(pos, &Error{
		Kind:    KindExpectation,
		Message: fmt.Sprintf("unrecognized character '%c'", ch),
		Pos:     pos,
		Line:    l.currentLineText(),
	})
}

// lexTwoOrChar lexes a comparison operator that is two characters when
// followed by '=' and a lone Char token otherwise.
func (l *Lexer) lexTwoOrChar(second byte, twoCharType token.Type, lonely byte) token.Token {
	pos := l.posNow()
	l.advance()
	if l.pos < len(l.input) && l.input[l.pos] == second {
		l.advance()
		return token.Token{Type: twoCharType, Pos: pos}
	}
	return token.Token{Type: token.CHAR, Ch: lonely, Pos: pos}
}

func (l *Lexer) lexNumber() token.Token {
	pos := l.posNow()
	var value int32
	for l.pos < len(l.input) && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
		value = value*10 + int32(l.input[l.pos]-'0')
		l.advance()
	}
	return token.Token{Type: token.NUMBER, Num: int(value), Pos: pos}
}

func (l *Lexer) lexWord() token.Token {
	pos := l.posNow()
	start := l.pos
	for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
		l.advance()
	}
	word := string(l.input[start:l.pos])
	if kw, ok := token.Keywords[word]; ok {
		return token.Token{Type: kw, Pos: pos}
	}
	return token.Token{Type: token.IDENT, Str: word, Pos: pos}
}

func (l *Lexer) lexString(quote byte) token.Token {
	pos := l.posNow()
	l.advance() // opening quote
	var out []byte
	for {
		if l.pos >= len(l.input) {
			return l.illegalAt(pos, &Error{
				Kind:    KindUnterminatedString,
				Message: "unterminated string literal",
				Pos:     pos,
				Line:    l.currentLineText(),
			})
		}
		ch := l.input[l.pos]
		if ch == quote {
			l.advance()
			break
		}
		if ch == '\n' {
			return l.illegalAt(pos, &Error{
				Kind:    KindUnterminatedString,
				Message: "raw newline inside string literal",
				Pos:     l.posNow(),
				Line:    l.currentLineText(),
			})
		}
		if ch == '\\' {
			escPos := l.posNow()
			l.advance()
			if l.pos >= len(l.input) {
				return l.illegalAt(pos, &Error{
					Kind:    KindUnterminatedString,
					Message: "unterminated escape sequence",
					Pos:     escPos,
					Line:    l.currentLineText(),
				})
			}
			esc := l.input[l.pos]
			decoded, ok := decodeEscape(esc)
			if !ok {
				return l.illegalAt(pos, &Error{
					Kind:    KindBadEscape,
					Message: fmt.Sprintf("unrecognized escape sequence \\%c", esc),
					Pos:     escPos,
					Line:    l.currentLineText(),
				})
			}
			out = append(out, decoded)
			l.advance()
			continue
		}
		out = append(out, ch)
		l.advance()
	}
	return token.Token{Type: token.STRING, Str: string(out), Pos: pos}
}

func decodeEscape(ch byte) (byte, bool) {
	switch ch {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	default:
		return 0, false
	}
}

// illegal records the pending diagnostic and returns the Illegal marker
// token; callers surface it via LastError.
func (l *Lexer) illegal(err *Error) token.Token {
	return l.illegalAt(err.Pos, err)
}

func (l *Lexer) illegalAt(pos token.Position, err *Error) token.Token {
	l.pendingIllegal = err
	return token.Token{Type: token.ILLEGAL, Pos: pos}
}

func (l *Lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) posNow() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) at(t token.Type) token.Token {
	return token.Token{Type: t, Pos: l.posNow()}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}
