// Package codec renders a token stream for the `mython tokens` command,
// either as plain text or as deterministic CBOR.
package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/opal-lang/mython/internal/token"
)

// DumpedToken is the CBOR-friendly projection of a token.Token: only the
// fields relevant to its variant are populated.
type DumpedToken struct {
	Type   string `cbor:"type"`
	Number int    `cbor:"number,omitempty"`
	Text   string `cbor:"text,omitempty"`
	Char   string `cbor:"char,omitempty"`
	Line   int    `cbor:"line"`
	Column int    `cbor:"column"`
}

// Dump converts a raw token into its CBOR-friendly projection.
func Dump(t token.Token) DumpedToken {
	d := DumpedToken{Type: t.Type.String(), Line: t.Pos.Line, Column: t.Pos.Column}
	switch t.Type {
	case token.NUMBER:
		d.Number = t.Num
	case token.STRING, token.IDENT:
		d.Text = t.Str
	case token.CHAR:
		d.Char = string(t.Ch)
	}
	return d
}

// MarshalCBOR produces a deterministic CBOR encoding of a token stream,
// the same canonical-options pattern used for byte-for-byte stable
// output across runs.
func MarshalCBOR(tokens []DumpedToken) ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("codec: build CBOR encoder: %w", err)
	}
	data, err := encMode.Marshal(tokens)
	if err != nil {
		return nil, fmt.Errorf("codec: marshal tokens: %w", err)
	}
	return data, nil
}
