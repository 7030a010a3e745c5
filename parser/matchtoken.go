package parser

import (
	"github.com/parsekit/rparse/grammar"
	"github.com/parsekit/rparse/lexer"
)

/*
matchToken evaluates a single match-token pattern against the cursor.

The three-valued result distinguishes:
  - matched: the pattern matched; value carries what was captured.
  - !matched, !hard: an ordinary soft mismatch. The cursor has been
    restored to exactly where it stood before this call (including
    before any whitespace skip performed on entry), so the caller is
    free to try another alternative or take an Isnt/IsntRules branch.
  - !matched, hard: a failure that must propagate immediately, without
    retrying alternatives and without any further rewinding - either a
    developer error (an undefined node/enumerator reference) or a child
    node that committed via HardError before failing.

Every match kind skips whitespace and end-of-line tokens at its entry
point before comparing, per the engine's whitespace-skipping rule.
*/
func (p *interp) matchToken(mt grammar.MatchToken, node *ASTNode) (value Captured, matched bool, hard bool, err error) {
	entry := p.cursor

	switch mt.Kind {
	case grammar.MatchKindToken:
		p.skipWhitespace()
		cur := p.currentToken()
		if cur.TokenKind != mt.TokenKind {
			p.cursor = entry
			return Captured{}, false, false, &ParseError{Kind: ExpectedToken, Expected: mt.TokenKind, Found: cur.TokenKind, TokenIdx: p.cursor, NodeName: node.Name}
		}
		return Captured{Kind: CapturedToken, Token: cur}, true, false, nil

	case grammar.MatchKindWord:
		p.skipWhitespace()
		cur := p.currentToken()
		if cur.TokenKind.Kind != lexer.KindText || p.stringify(cur) != mt.Word {
			p.cursor = entry
			return Captured{}, false, false, &ParseError{Kind: ExpectedWord, ExpectedWord: mt.Word, Found: cur.TokenKind, TokenIdx: p.cursor, NodeName: node.Name}
		}
		return Captured{Kind: CapturedToken, Token: cur}, true, false, nil

	case grammar.MatchKindNode:
		p.skipWhitespace()
		child, perr := p.parseNode(mt.Node)
		if perr != nil {
			if DeveloperError(perr) || child.HardError {
				return Captured{}, false, true, perr
			}
			p.cursor = entry
			return Captured{}, false, false, perr
		}
		return Captured{Kind: CapturedNode, Node: child}, true, false, nil

	case grammar.MatchKindEnumerator:
		p.skipWhitespace()
		enum, ok := p.grammar.Enumerators[mt.Enumerator]
		if !ok {
			return Captured{}, false, true, &ParseError{Kind: EnumeratorNotFound, Name: mt.Enumerator, TokenIdx: p.cursor}
		}
		var lastErr error
		for _, alt := range enum.Values {
			val, m, h, aerr := p.matchToken(alt, node)
			if h {
				return Captured{}, false, true, aerr
			}
			if m {
				return val, true, false, nil
			}
			lastErr = aerr
		}
		p.cursor = entry
		if lastErr == nil {
			lastErr = &ParseError{Kind: ExpectedToken, Expected: lexer.Text(), Found: p.currentToken().TokenKind, TokenIdx: p.cursor}
		}
		return Captured{}, false, false, lastErr
	}

	return Captured{}, false, true, &ParseError{Kind: Message, Text: "malformed match-token"}
}

/*
skipWhitespace advances the cursor past any run of Whitespace/EOL tokens.
*/
func (p *interp) skipWhitespace() {
	for p.cursor < len(p.tokens) {
		k := p.tokens[p.cursor].TokenKind
		if k.Kind == lexer.KindWhitespace || (k.Kind == lexer.KindControl && k.Control == lexer.ControlEOL) {
			p.cursor++
			continue
		}
		break
	}
}

/*
currentToken returns the token at the cursor, or the final (Control/EOF)
token if the cursor has run past the end of the stream.
*/
func (p *interp) currentToken() lexer.Token {
	if p.cursor < len(p.tokens) {
		return p.tokens[p.cursor]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *interp) stringify(t lexer.Token) string {
	if t.Offset < 0 || t.Offset+t.Length > len(p.text) {
		return ""
	}
	return p.text[t.Offset : t.Offset+t.Length]
}
