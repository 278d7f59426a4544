package parser

import (
	"fmt"
	"strings"

	"github.com/opal-lang/mython/internal/token"
)

// Error is a parse-time diagnostic, rendered in the same
// "  --> line:col" caret-pointer snippet style as internal/lexer.Error.
type Error struct {
	Message string
	Pos     token.Position
	Line    string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse error: %s\n", e.Message)
	fmt.Fprintf(&b, "  --> %d:%d\n", e.Pos.Line, e.Pos.Column)
	if e.Line != "" {
		fmt.Fprintf(&b, "   |\n%2d | %s\n   | ", e.Pos.Line, e.Line)
		if e.Pos.Column > 0 && e.Pos.Column <= len(e.Line)+1 {
			b.WriteString(strings.Repeat(" ", e.Pos.Column-1) + "^")
		}
	}
	return b.String()
}
