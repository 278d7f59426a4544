package lexer

import (
	"fmt"
	"strings"

	"github.com/opal-lang/mython/internal/token"
)

// Kind categorizes a lexical failure.
type Kind int

const (
	KindUnterminatedString Kind = iota
	KindBadEscape
	KindStrayBang
	KindNonASCII
	KindExpectation
)

func (k Kind) String() string {
	switch k {
	case KindUnterminatedString:
		return "unterminated string"
	case KindBadEscape:
		return "unrecognized escape sequence"
	case KindStrayBang:
		return "stray '!'"
	case KindNonASCII:
		return "non-ASCII input"
	case KindExpectation:
		return "unexpected token"
	default:
		return "lexical error"
	}
}

// Error is the fatal, non-recoverable error the lexer raises, carrying
// enough context to render a source snippet with a caret pointer.
type Error struct {
	Kind    Kind
	Message string
	Pos     token.Position
	Line    string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", e.Kind, e.Message)
	fmt.Fprintf(&b, "  --> %d:%d\n", e.Pos.Line, e.Pos.Column)
	if e.Line != "" {
		fmt.Fprintf(&b, "   |\n%2d | %s\n   | ", e.Pos.Line, e.Line)
		if e.Pos.Column > 0 && e.Pos.Column <= len(e.Line)+1 {
			b.WriteString(strings.Repeat(" ", e.Pos.Column-1) + "^")
		}
	}
	return b.String()
}
