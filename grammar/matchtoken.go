package grammar

import "github.com/parsekit/rparse/lexer"

/*
MatchTokenKind tags the variant of a MatchToken.
*/
type MatchTokenKind int

/*
MatchToken variants: a literal token kind, a literal word's spelling, a
named grammar node, or a named enumerator.
*/
const (
	MatchKindToken MatchTokenKind = iota
	MatchKindWord
	MatchKindNode
	MatchKindEnumerator
)

/*
MatchToken is a single match-token pattern: exactly one of Token, Word,
Node or Enumerator, selected by Kind. Building one of these as a plain
composite literal is the primary way grammars are authored.
*/
type MatchToken struct {
	Kind      MatchTokenKind
	TokenKind lexer.TokenKind // MatchKindToken
	Word      string          // MatchKindWord
	Node      string          // MatchKindNode
	Enumerator string         // MatchKindEnumerator
}

/*
TokenOf builds a MatchToken that matches a raw lexer token kind.
*/
func TokenOf(k lexer.TokenKind) MatchToken {
	return MatchToken{Kind: MatchKindToken, TokenKind: k}
}

/*
WordOf builds a MatchToken that matches a Text token with the given
spelling.
*/
func WordOf(word string) MatchToken {
	return MatchToken{Kind: MatchKindWord, Word: word}
}

/*
NodeOf builds a MatchToken that recurses into a named grammar node.
*/
func NodeOf(name string) MatchToken {
	return MatchToken{Kind: MatchKindNode, Node: name}
}

/*
EnumeratorOf builds a MatchToken that tries each value of a named
enumerator in order.
*/
func EnumeratorOf(name string) MatchToken {
	return MatchToken{Kind: MatchKindEnumerator, Enumerator: name}
}
