package codec

import (
	"bytes"
	"testing"

	cbor "github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opal-lang/mython/internal/token"
)

func TestDumpPreservesVariantPayload(t *testing.T) {
	num := Dump(token.Token{Type: token.NUMBER, Num: 42, Pos: token.Position{Line: 1, Column: 3}})
	assert.Equal(t, "Number", num.Type)
	assert.Equal(t, 42, num.Number)

	ident := Dump(token.Token{Type: token.IDENT, Str: "x"})
	assert.Equal(t, "x", ident.Text)

	ch := Dump(token.Token{Type: token.CHAR, Ch: '+'})
	assert.Equal(t, "+", ch.Char)
}

func TestMarshalCBORRoundTrips(t *testing.T) {
	tokens := []DumpedToken{
		Dump(token.Token{Type: token.NUMBER, Num: 7}),
		Dump(token.Token{Type: token.EOF}),
	}
	data, err := MarshalCBOR(tokens)
	require.NoError(t, err)

	var decoded []DumpedToken
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	assert.Equal(t, tokens, decoded)
}

func TestWriteTextOneTokenPerLine(t *testing.T) {
	var buf bytes.Buffer
	err := WriteText(&buf, []token.Token{
		{Type: token.IDENT, Str: "x"},
		{Type: token.EOF},
	})
	require.NoError(t, err)
	assert.Equal(t, "Id{x}\nEof\n", buf.String())
}
