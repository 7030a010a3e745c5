package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryPassLongestMatch(t *testing.T) {
	l := New()
	l.AddLiterals("=", "==", "+", "+=")

	toks, err := l.Lex("a == b += 1")
	require.NoError(t, err)

	var lits []string
	for _, tok := range toks {
		if tok.TokenKind.Kind == KindLiteral {
			lits = append(lits, tok.TokenKind.Literal)
		}
	}

	assert.Equal(t, []string{"==", "+="}, lits)
}

func TestPrimaryPassAppendsEOF(t *testing.T) {
	l := New()

	toks, err := l.Lex("x")
	require.NoError(t, err)
	require.NotEmpty(t, toks)

	last := toks[len(toks)-1]
	assert.Equal(t, KindControl, last.TokenKind.Kind)
	assert.Equal(t, ControlEOF, last.TokenKind.Control)
}

func TestPrimaryPassTracksLineColumn(t *testing.T) {
	l := New()

	toks, err := l.Lex("ab\ncd")
	require.NoError(t, err)

	var cd Token
	for _, tok := range toks {
		if tok.TokenKind.Kind == KindText && l.Stringify("ab\ncd", tok) == "cd" {
			cd = tok
		}
	}

	assert.Equal(t, 2, cd.Location.Line)
	assert.Equal(t, 1, cd.Location.Column)
}

func TestStringifyReturnsSourceSlice(t *testing.T) {
	l := New()
	text := "hello world"

	toks, err := l.Lex(text)
	require.NoError(t, err)

	assert.Equal(t, "hello", l.Stringify(text, toks[0]))
}

func TestPreprocessorMergesTokenRun(t *testing.T) {
	l := New()

	// merge consecutive digit-only Text tokens separated by a "." literal
	// into a single Complex("number") token.
	l.AddLiterals(".")
	l.AddPreprocessor(func(toks []Token, pos int, text string) (Token, int, bool, error) {
		cur := toks[pos]
		if cur.TokenKind.Kind != KindText || !isDigits(text, cur) {
			return cur, 0, false, nil
		}
		if pos+2 < len(toks) &&
			toks[pos+1].TokenKind == Literal(".") &&
			toks[pos+2].TokenKind.Kind == KindText && isDigits(text, toks[pos+2]) {
			merged := Token{
				TokenKind: Complex("number"),
				Offset:    cur.Offset,
				Length:    toks[pos+2].Offset + toks[pos+2].Length - cur.Offset,
				Location:  cur.Location,
			}
			return merged, 2, false, nil
		}
		return cur, 0, false, nil
	})

	text := "3.14 x"
	toks, err := l.Lex(text)
	require.NoError(t, err)

	require.True(t, len(toks) > 0)
	assert.Equal(t, Complex("number"), toks[0].TokenKind)
	assert.Equal(t, "3.14", l.Stringify(text, toks[0]))
}

func isDigits(text string, t Token) bool {
	for _, r := range text[t.Offset : t.Offset+t.Length] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return t.Length > 0
}
