// Package samplegrammar is a small C-like demonstration grammar built on
// top of rparse's lexer/grammar/parser packages. It exists only to
// exercise the engine end-to-end; the core packages never import it.
package samplegrammar

import (
	"unicode/utf8"

	"github.com/parsekit/rparse/lexer"
)

/*
Literals declares every punctuation/operator token the sample grammar's
lexer recognizes, longest-match first is handled automatically by
Lexer.AddLiterals.
*/
var Literals = []string{
	"+=", "-=", "*=", "/=",
	"+", "-", "*", "/",
	"(", ")", "{", "}", "[", "]",
	"<=", ">=", "<", ">", "==", "=", "!=", "!",
	"&&", "||", "?", ":", ".", ";", ",",
	"\"", "'", "#", "&",
}

/*
mergeStrings collapses a `"…"` run into a single Complex("string") token
spanning the whole literal, quotes included.
*/
func mergeStrings(toks []lexer.Token, pos int, text string) (lexer.Token, int, bool, error) {
	cur := toks[pos]
	if cur.TokenKind != lexer.Literal(`"`) {
		return cur, 0, false, nil
	}

	for j := pos + 1; j < len(toks); j++ {
		if toks[j].TokenKind == lexer.Literal(`"`) {
			end := toks[j]
			merged := lexer.Token{
				TokenKind: lexer.Complex("string"),
				Offset:    cur.Offset,
				Length:    end.Offset + end.Length - cur.Offset,
				Location:  cur.Location,
			}
			return merged, j - pos, false, nil
		}
	}

	return lexer.Token{}, 0, false, &lexer.Error{Message: "expected a closing quote", Offset: cur.Offset}
}

/*
mergeNumbers recognizes a numeric Text token and a trailing type suffix
(u/i/f/c), and a possible `digits . digits` float, collapsing them into a
single Complex("int"|"uint"|"float"|"char") token. An identifier Text
token (non-digit) passes through unchanged.
*/
func mergeNumbers(toks []lexer.Token, pos int, text string) (lexer.Token, int, bool, error) {
	cur := toks[pos]
	if cur.TokenKind.Kind != lexer.KindText {
		return cur, 0, false, nil
	}

	s := stringify(text, cur)
	digits, suffix := splitSuffix(s)
	if !isAllDigits(digits) {
		return cur, 0, false, nil
	}

	if pos+1 >= len(toks) || toks[pos+1].TokenKind != lexer.Literal(".") {
		tag := numberTag(suffix)
		return lexer.Token{TokenKind: lexer.Complex(tag), Offset: cur.Offset, Length: cur.Length, Location: cur.Location}, 0, false, nil
	}

	dot := toks[pos+1]
	if pos+2 >= len(toks) || toks[pos+2].TokenKind.Kind != lexer.KindText {
		merged := lexer.Token{
			TokenKind: lexer.Complex("float"),
			Offset:    cur.Offset,
			Length:    dot.Offset + dot.Length - cur.Offset,
			Location:  cur.Location,
		}
		return merged, 1, false, nil
	}

	frac := toks[pos+2]
	if !isAllDigits(stringify(text, frac)) {
		return lexer.Token{}, 0, false, &lexer.Error{Message: "expected a float", Offset: cur.Offset}
	}

	merged := lexer.Token{
		TokenKind: lexer.Complex("float"),
		Offset:    cur.Offset,
		Length:    frac.Offset + frac.Length - cur.Offset,
		Location:  cur.Location,
	}
	return merged, 2, false, nil
}

func numberTag(suffix rune) string {
	switch suffix {
	case 'u':
		return "uint"
	case 'i':
		return "int"
	case 'f':
		return "float"
	case 'c':
		return "char"
	default:
		return "int"
	}
}

// splitSuffix strips a trailing single-letter type suffix (u/i/f/c) from
// s, returning the remaining digit run and the suffix rune (0 if none).
func splitSuffix(s string) (string, rune) {
	if s == "" {
		return s, 0
	}
	last, size := utf8.DecodeLastRuneInString(s)
	switch last {
	case 'u', 'i', 'f', 'c':
		return s[:len(s)-size], last
	}
	return s, 0
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func stringify(text string, t lexer.Token) string {
	if t.Offset < 0 || t.Offset+t.Length > len(text) {
		return ""
	}
	return text[t.Offset : t.Offset+t.Length]
}
