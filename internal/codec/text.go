package codec

import (
	"fmt"
	"io"

	"github.com/opal-lang/mython/internal/token"
)

// WriteText writes one token per line in token.Token.String()'s
// diagnostic format. It writes exactly the tokens given and appends no
// terminator of its own; a stream from the lexer already ends in "Eof".
func WriteText(w io.Writer, tokens []token.Token) error {
	for _, t := range tokens {
		if _, err := fmt.Fprintln(w, t.String()); err != nil {
			return err
		}
	}
	return nil
}
