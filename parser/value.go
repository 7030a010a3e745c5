package parser

import "github.com/parsekit/rparse/lexer"

/*
CapturedKind tags whether a Captured value holds a raw token or a
finished child node.
*/
type CapturedKind int

/*
Captured value kinds.
*/
const (
	CapturedToken CapturedKind = iota
	CapturedNode
)

/*
Captured is the value a Parameter (Set/Global) stores into a variable:
either the raw lexer.Token a match-token matched, or the *ASTNode a
Node(name) match produced.
*/
type Captured struct {
	Kind  CapturedKind
	Token lexer.Token
	Node  *ASTNode
}
