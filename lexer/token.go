/*
 * rparse
 *
 * A data-driven parsing engine: a runtime-configurable lexer plus a
 * tree-walking grammar interpreter.
 */

package lexer

import "fmt"

/*
Kind is the coarse classification of a token produced by the lexer.
*/
type Kind int

/*
Token kind classes.
*/
const (
	KindText       Kind = iota // A contiguous identifier-like word
	KindWhitespace             // Run of non-newline whitespace
	KindControl                // Structural marker (end-of-line, end-of-file)
	KindLiteral                // A user-declared punctuation/operator literal
	KindComplex                // A synthetic category produced by a preprocessor
)

/*
ControlSub distinguishes the flavours of a KindControl token.
*/
type ControlSub int

/*
Control token flavours.
*/
const (
	ControlEOL ControlSub = iota
	ControlEOF
)

/*
TokenKind is the tagged-variant pattern described in the data model: a
token is exactly one of Text, Whitespace, Control(sub), Literal(lit) or
Complex(tag). All fields are comparable so a TokenKind can be compared
with == and used as a map key, which the interpreter relies on.
*/
type TokenKind struct {
	Kind    Kind
	Control ControlSub // meaningful when Kind == KindControl
	Literal string     // meaningful when Kind == KindLiteral
	Tag     string      // meaningful when Kind == KindComplex
}

/*
Text returns the TokenKind for an identifier-like word.
*/
func Text() TokenKind { return TokenKind{Kind: KindText} }

/*
Whitespace returns the TokenKind for a run of non-newline whitespace.
*/
func Whitespace() TokenKind { return TokenKind{Kind: KindWhitespace} }

/*
EOL returns the TokenKind for a line terminator.
*/
func EOL() TokenKind { return TokenKind{Kind: KindControl, Control: ControlEOL} }

/*
EOF returns the TokenKind for the terminal end-of-input marker.
*/
func EOF() TokenKind { return TokenKind{Kind: KindControl, Control: ControlEOF} }

/*
Literal returns the TokenKind for a declared punctuation/operator literal.
*/
func Literal(lit string) TokenKind { return TokenKind{Kind: KindLiteral, Literal: lit} }

/*
Complex returns the TokenKind for a preprocessor-synthesized category.
*/
func Complex(tag string) TokenKind { return TokenKind{Kind: KindComplex, Tag: tag} }

/*
String returns a short human-readable rendering of a token kind, used by
error messages and the trace logger.
*/
func (k TokenKind) String() string {
	switch k.Kind {
	case KindText:
		return "Text"
	case KindWhitespace:
		return "Whitespace"
	case KindControl:
		if k.Control == ControlEOF {
			return "Control(eof)"
		}
		return "Control(eol)"
	case KindLiteral:
		return fmt.Sprintf("Token(%q)", k.Literal)
	case KindComplex:
		return fmt.Sprintf("Complex(%q)", k.Tag)
	}
	return "Unknown"
}

/*
Location is the human-facing source position of a token's first byte.
*/
type Location struct {
	Line   int
	Column int
	File   string
}

/*
Token is a single lexical unit: a kind plus its byte span and source
location. Tokens are immutable once produced. AST nodes record their span
as token indices; a token captured into a variable is stored as a copy.
*/
type Token struct {
	TokenKind TokenKind
	Offset    int
	Length    int
	Location  Location
}

/*
String returns a short human-readable rendering of the token, without the
source text (use a Lexer's Stringify for that).
*/
func (t Token) String() string {
	return fmt.Sprintf("%s@%d:%d", t.TokenKind, t.Location.Line, t.Location.Column)
}
