package parser

import (
	"fmt"

	"github.com/parsekit/rparse/grammar"
	"github.com/parsekit/rparse/lexer"
)

/*
ErrorKind classifies a ParseError into one of the kinds the grammar
interpreter can produce: the ten rows of the engine's error table plus
LabelNotFound, a missing-reference case the table's own "missing
references ... manifest as developer errors during parsing" rule
extends to naturally. User-kind errors are soft by default and only
propagate without rewinding when a node has committed via HardError.
Developer-kind errors always propagate, regardless of any HardError
commitment, because they indicate a defect in the grammar itself rather
than a rejection of the input text.
*/
type ErrorKind int

/*
Error kinds: the ten rows of the engine's error table plus LabelNotFound.
*/
const (
	// User errors.
	ExpectedToken ErrorKind = iota
	ExpectedWord
	ExpectedToNotBe
	Message
	Eof

	// Developer errors - always propagate.
	NodeNotFound
	EnumeratorNotFound
	VariableNotFound
	CannotSetVariable
	UncountableVariable
	LabelNotFound
)

/*
ParseError is the single error type the parser produces, covering both
the user-facing ("this input doesn't match") and developer-facing
("this grammar references something that doesn't exist") failure
classes described by the engine's error table.
*/
type ParseError struct {
	Kind ErrorKind

	Expected lexer.TokenKind
	Found    lexer.TokenKind

	ExpectedWord string

	Text string // Message/RaiseError payload

	Name    string // Node/Enumerator/Variable name
	VarKind grammar.VariableKind

	TokenIdx int
	NodeName string
}

/*
Error implements the error interface.
*/
func (e *ParseError) Error() string {
	switch e.Kind {
	case ExpectedToken:
		return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	case ExpectedWord:
		return fmt.Sprintf("expected word %q, found %s", e.ExpectedWord, e.Found)
	case ExpectedToNotBe:
		return fmt.Sprintf("expected to not find %s", e.Found)
	case Message:
		return e.Text
	case Eof:
		return "unexpected end of input"
	case NodeNotFound:
		return fmt.Sprintf("grammar references undefined node %q", e.Name)
	case EnumeratorNotFound:
		return fmt.Sprintf("grammar references undefined enumerator %q", e.Name)
	case VariableNotFound:
		return fmt.Sprintf("grammar references undeclared variable %q", e.Name)
	case CannotSetVariable:
		return fmt.Sprintf("cannot Set/Global variable %q of kind %s", e.Name, e.VarKind)
	case UncountableVariable:
		return fmt.Sprintf("cannot Count/True/False variable %q of kind %s", e.Name, e.VarKind)
	case LabelNotFound:
		return fmt.Sprintf("node %q: goto targets undefined label %q", e.NodeName, e.Name)
	}
	return "unknown parse error"
}

/*
DeveloperError reports whether err is a ParseError belonging to the
developer-error class, which always propagates past a backtracking point
rather than being absorbed as an ordinary soft mismatch.
*/
func DeveloperError(err error) bool {
	pe, ok := err.(*ParseError)
	if !ok {
		return false
	}
	return pe.isDeveloperError()
}

func (e *ParseError) isDeveloperError() bool {
	switch e.Kind {
	case NodeNotFound, EnumeratorNotFound, VariableNotFound, CannotSetVariable, UncountableVariable, LabelNotFound:
		return true
	}
	return false
}
