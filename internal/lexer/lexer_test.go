package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/opal-lang/mython/internal/token"
)

// collect drains l until Eof (inclusive) and returns the Type sequence,
// a GetTokens()-then-compare pattern adapted to a go-cmp type-sequence
// diff since Mython tokens carry variant payloads rather than raw text.
func collect(t *testing.T, l *Lexer) []token.Type {
	t.Helper()
	var types []token.Type
	for {
		cur := l.Current()
		if cur.Type == token.ILLEGAL {
			if err := l.LastError(); err != nil {
				t.Fatalf("unexpected lexical error: %v", err)
			}
		}
		types = append(types, cur.Type)
		if cur.Type == token.EOF {
			return types
		}
		l.Next()
	}
}

func assertTypes(t *testing.T, name, src string, want []token.Type) {
	t.Helper()
	got := collect(t, New([]byte(src)))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s: token type mismatch (-want +got):\n%s", name, diff)
	}
}

func TestEmptyInput(t *testing.T) {
	assertTypes(t, "empty", "", []token.Type{token.EOF})
}

func TestSingleLineExpression(t *testing.T) {
	assertTypes(t, "expr", "x = 1 + 2", []token.Type{
		token.IDENT, token.CHAR, token.NUMBER, token.CHAR, token.NUMBER, token.NEWLINE, token.EOF,
	})
}

func TestComparisonOperators(t *testing.T) {
	assertTypes(t, "comparisons", "a == b\nc != d\ne <= f\ng >= h\ni < j\nk > l\n", []token.Type{
		token.IDENT, token.EQ, token.IDENT, token.NEWLINE,
		token.IDENT, token.NOTEQ, token.IDENT, token.NEWLINE,
		token.IDENT, token.LESSOREQ, token.IDENT, token.NEWLINE,
		token.IDENT, token.GREATEROREQ, token.IDENT, token.NEWLINE,
		token.IDENT, token.CHAR, token.IDENT, token.NEWLINE,
		token.IDENT, token.CHAR, token.IDENT, token.NEWLINE,
		token.EOF,
	})
}

func TestBlankAndCommentLinesDoNotAffectIndentation(t *testing.T) {
	src := "if True:\n  x = 1\n\n  # a comment\n  y = 2\n"
	assertTypes(t, "blank/comment", src, []token.Type{
		token.IF, token.TRUE, token.CHAR, token.NEWLINE,
		token.INDENT,
		token.IDENT, token.CHAR, token.NUMBER, token.NEWLINE,
		token.IDENT, token.CHAR, token.NUMBER, token.NEWLINE,
		token.DEDENT, token.EOF,
	})
}

func TestIndentDedentAcrossNestedBlocks(t *testing.T) {
	src := "class C:\n  def f():\n    return 1\n"
	assertTypes(t, "nested class", src, []token.Type{
		token.CLASS, token.IDENT, token.CHAR, token.NEWLINE,
		token.INDENT,
		token.DEF, token.IDENT, token.CHAR, token.CHAR, token.CHAR, token.NEWLINE,
		token.INDENT,
		token.RETURN, token.NUMBER, token.NEWLINE,
		token.DEDENT, token.DEDENT, token.EOF,
	})
}

func TestNoTrailingNewlineDrainsDedentsBeforeEof(t *testing.T) {
	src := "class C:\n  def f():\n    return 1"
	assertTypes(t, "no trailing newline", src, []token.Type{
		token.CLASS, token.IDENT, token.CHAR, token.NEWLINE,
		token.INDENT,
		token.DEF, token.IDENT, token.CHAR, token.CHAR, token.CHAR, token.NEWLINE,
		token.INDENT,
		token.RETURN, token.NUMBER,
		token.NEWLINE, token.DEDENT, token.DEDENT, token.EOF,
	})
}

func TestStringLiteralWithEscapes(t *testing.T) {
	l := New([]byte(`"a\nb"`))
	tok := l.Current()
	if tok.Type != token.STRING {
		t.Fatalf("expected String, got %s", tok.Type)
	}
	if tok.Str != "a\nb" {
		t.Fatalf("expected decoded escape, got %q", tok.Str)
	}
}

func TestUnterminatedStringIsIllegal(t *testing.T) {
	l := New([]byte(`"unterminated`))
	if l.Current().Type != token.ILLEGAL {
		t.Fatalf("expected Illegal, got %s", l.Current().Type)
	}
	err := l.LastError()
	if err == nil {
		t.Fatal("expected a LastError for unterminated string")
	}
}

func TestStrayBangIsIllegal(t *testing.T) {
	l := New([]byte("x ! y"))
	l.Next() // x
	if l.Current().Type != token.ILLEGAL {
		t.Fatalf("expected Illegal at stray '!', got %s", l.Current().Type)
	}
	if l.LastError() == nil {
		t.Fatal("expected a LastError for stray '!'")
	}
}

func TestKeywordsAreNotIdentifiers(t *testing.T) {
	assertTypes(t, "keywords", "class return if else def print and or not None True False\n", []token.Type{
		token.CLASS, token.RETURN, token.IF, token.ELSE, token.DEF, token.PRINT,
		token.AND, token.OR, token.NOT, token.NONE, token.TRUE, token.FALSE,
		token.NEWLINE, token.EOF,
	})
}

func TestNumberLiteralPayload(t *testing.T) {
	l := New([]byte("12345"))
	if l.Current().Num != 12345 {
		t.Fatalf("expected Num=12345, got %d", l.Current().Num)
	}
}

func TestMethodCallDotChain(t *testing.T) {
	assertTypes(t, "method call", "a.b(1, 2)\n", []token.Type{
		token.IDENT, token.CHAR, token.IDENT, token.CHAR, token.NUMBER, token.CHAR, token.NUMBER, token.CHAR, token.NEWLINE, token.EOF,
	})
}
