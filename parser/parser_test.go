package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/rparse/grammar"
	"github.com/parsekit/rparse/lexer"
)

func lexSimple(t *testing.T, text string, lits ...string) []lexer.Token {
	t.Helper()
	lx := lexer.New()
	lx.AddLiterals(lits...)
	toks, err := lx.Lex(text)
	require.NoError(t, err)
	return toks
}

// Literal-only match: entry is a single Is{Word("hi")} rule; input "hi".
func TestLiteralOnlyMatch(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		WithRules(grammar.Is(grammar.WordOf("hi"), nil)))

	toks := lexSimple(t, "hi")
	res, err := Parse(g, toks, "hi", "")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Entry.FirstTokenIdx)
	assert.Equal(t, 0, res.Entry.LastTokenIdx)
}

// Backtracking alternative: IsOneOf{Word("fun"), Word("let")}, input "let".
func TestBacktrackingAlternative(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		WithRules(grammar.IsOneOf(
			grammar.Alternative{Token: grammar.WordOf("fun")},
			grammar.Alternative{Token: grammar.WordOf("let")},
		)))

	toks := lexSimple(t, "let")
	res, err := Parse(g, toks, "let", "")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Entry.LastTokenIdx)
}

// Hard error: entry is Is{Word("fun"), params:[HardError(true)]} followed by
// Is{Text}. Input "fun" only (no identifier) must surface as a developer-
// unreachable, propagating ParseError rather than being absorbed upstream.
func TestHardErrorPropagates(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		WithRules(
			grammar.Is(grammar.WordOf("fun"), []grammar.Parameter{grammar.HardError(true)}),
			grammar.Is(grammar.TokenOf(lexer.Text()), nil),
		))

	toks := lexSimple(t, "fun")
	_, err := Parse(g, toks, "fun", "")
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ExpectedToken, pe.Kind)
}

// A node wrapping the committed Is{Word("fun")}: when tried as an
// alternative from an enclosing IsOneOf, its HardError commitment must
// still propagate rather than being converted into a soft "try the next
// alternative" failure.
func TestHardErrorInsideNodeIsNotAbsorbedByCaller(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("fundecl").
		WithRules(
			grammar.Is(grammar.WordOf("fun"), []grammar.Parameter{grammar.HardError(true)}),
			grammar.Is(grammar.TokenOf(lexer.Text()), nil),
		))
	g.InsertNode(grammar.NewNodeDefinition("entry").
		WithRules(grammar.IsOneOf(
			grammar.Alternative{Token: grammar.NodeOf("fundecl")},
			grammar.Alternative{Token: grammar.WordOf("fun")},
		)))

	toks := lexSimple(t, "fun")
	_, err := Parse(g, toks, "fun", "")
	require.Error(t, err)
	_, ok := err.(*ParseError)
	require.True(t, ok)
}

// An Isnt whose token is present fails the node with ExpectedToNotBe.
func TestIsntFailsWithExpectedToNotBe(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		WithRules(
			grammar.Isnt(grammar.WordOf("let")),
		))

	toks := lexSimple(t, "let")
	_, err := Parse(g, toks, "let", "")
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ExpectedToNotBe, pe.Kind)
}

func TestIsntSucceedsAndRunsInnerRules(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		DeclareVariable("tail", grammar.KindNodeSlot).
		WithRules(
			grammar.Isnt(grammar.WordOf("let"),
				grammar.Is(grammar.TokenOf(lexer.Text()), []grammar.Parameter{grammar.Set("tail")}),
			),
		))

	toks := lexSimple(t, "other")
	res, err := Parse(g, toks, "other", "")
	require.NoError(t, err)
	v := res.Entry.Variables["tail"].(*NodeSlotVar)
	require.NotNil(t, v.Value)
	assert.Equal(t, lexer.KindText, v.Value.Token.TokenKind.Kind)
}

// Alternation first-match (testable property 5): given two alternatives
// that would both succeed, the first wins and the second's effects are
// never observed.
func TestAlternationFirstMatchWins(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		DeclareVariable("which", grammar.KindNodeSlot).
		WithRules(grammar.IsOneOf(
			grammar.Alternative{Token: grammar.TokenOf(lexer.Text()), Params: []grammar.Parameter{grammar.Set("which")}},
			grammar.Alternative{Token: grammar.WordOf("hi"), Params: []grammar.Parameter{grammar.HardError(true)}},
		)))

	toks := lexSimple(t, "hi")
	res, err := Parse(g, toks, "hi", "")
	require.NoError(t, err)
	assert.False(t, res.Entry.HardError)
}

// Span correctness / empty-span definition (testable property 3 and the
// "Open question - empty-span nodes" design note): a node that consumes
// zero tokens has last == first-1.
func TestEmptySpanNode(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		WithRules(grammar.Maybe(grammar.WordOf("missing"), nil, nil, nil)))

	toks := lexSimple(t, "present")
	res, err := Parse(g, toks, "present", "")
	require.NoError(t, err)
	assert.True(t, res.Entry.Empty())
	assert.Equal(t, res.Entry.FirstTokenIdx, res.Entry.LastTokenIdx+1)
}

// Sub-node consumption: when Is{Node(n)} matches, the enclosing rule must
// not advance the cursor an extra time past what the sub-node consumed.
func TestSubNodeConsumptionDoesNotDoubleAdvance(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("word").
		WithRules(grammar.Is(grammar.TokenOf(lexer.Text()), nil)))
	g.InsertNode(grammar.NewNodeDefinition("entry").
		DeclareVariable("first", grammar.KindNodeSlot).
		WithRules(
			grammar.Is(grammar.NodeOf("word"), []grammar.Parameter{grammar.Set("first")}),
			grammar.Is(grammar.TokenOf(lexer.EOF()), nil),
		))

	toks := lexSimple(t, "hi")
	res, err := Parse(g, toks, "hi", "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Entry.LastTokenIdx)
}

// While: greedy zero-or-more, never fails itself.
func TestWhileAccumulatesNodeList(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		DeclareVariable("words", grammar.KindNodeList).
		WithRules(grammar.While(grammar.TokenOf(lexer.Text()), []grammar.Parameter{grammar.Set("words")})))

	toks := lexSimple(t, "a b c")
	res, err := Parse(g, toks, "a b c", "")
	require.NoError(t, err)
	lv := res.Entry.Variables["words"].(*NodeListVar)
	assert.Len(t, lv.Values, 3)
}

// Until: advances past tokens until the target matches, leaving it
// unconsumed for inner rules to claim.
func TestUntilLeavesMatchUnconsumed(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		DeclareVariable("stop", grammar.KindNodeSlot).
		WithRules(grammar.Until(grammar.WordOf("stop"), []grammar.Parameter{grammar.Set("stop")},
			grammar.Is(grammar.WordOf("stop"), nil))))

	toks := lexSimple(t, "a b stop")
	res, err := Parse(g, toks, "a b stop", "")
	require.NoError(t, err)
	v := res.Entry.Variables["stop"].(*NodeSlotVar)
	require.NotNil(t, v.Value)
}

func TestUntilReachingEofIsError(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		WithRules(grammar.Until(grammar.WordOf("stop"), nil)))

	toks := lexSimple(t, "a b c")
	_, err := Parse(g, toks, "a b c", "")
	require.Error(t, err)
	pe := err.(*ParseError)
	assert.Equal(t, Eof, pe.Kind)
}

// Loop/Goto/Label: a Loop runs its body repeatedly until a Goto targets a
// Label outside of it.
func TestLoopExitsViaGotoToOuterLabel(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		DeclareVariable("count", grammar.KindNumber).
		WithRules(
			grammar.Loop(
				grammar.Maybe(grammar.TokenOf(lexer.Text()),
					[]grammar.Parameter{grammar.Count("count")},
					[]grammar.Rule{},
					[]grammar.Rule{grammar.CommandRule(grammar.GotoCommand("done"))},
				),
			),
			grammar.CommandRule(grammar.Label("done")),
		))

	toks := lexSimple(t, "a b c")
	res, err := Parse(g, toks, "a b c", "")
	require.NoError(t, err)
	nv := res.Entry.Variables["count"].(*NumberVar)
	assert.EqualValues(t, 3, nv.Value)
}

func TestGotoParameterUnwindsLoop(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		DeclareVariable("count", grammar.KindNumber).
		WithRules(
			grammar.Loop(
				grammar.IsOneOf(
					grammar.Alternative{
						Token:  grammar.WordOf("stop"),
						Params: []grammar.Parameter{grammar.Goto("after")},
					},
					grammar.Alternative{
						Token:  grammar.TokenOf(lexer.Text()),
						Params: []grammar.Parameter{grammar.Count("count")},
					},
				),
			),
			grammar.CommandRule(grammar.Label("after")),
		))

	toks := lexSimple(t, "a b stop c")
	res, err := Parse(g, toks, "a b stop c", "")
	require.NoError(t, err)
	nv := res.Entry.Variables["count"].(*NumberVar)
	assert.EqualValues(t, 2, nv.Value)
}

// A Goto naming a label that is declared nowhere in the node's scope is
// a malformed-grammar reference, reported the same way as an undefined
// node/enumerator/variable reference - not a panic.
func TestUnresolvedGotoIsLabelNotFoundError(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		WithRules(
			grammar.Is(grammar.WordOf("a"), []grammar.Parameter{grammar.Goto("nowhere")}),
		))

	toks := lexSimple(t, "a")
	_, err := Parse(g, toks, "a", "")
	require.Error(t, err)

	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, LabelNotFound, pe.Kind)
	assert.Equal(t, "nowhere", pe.Name)
	assert.Equal(t, "entry", pe.NodeName)
	assert.True(t, DeveloperError(err))
}

// Return ends the current node's rule walk as an immediate success.
func TestReturnEndsNodeWalkEarly(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		DeclareVariable("hit", grammar.KindBoolean).
		WithRules(
			grammar.Is(grammar.WordOf("a"), []grammar.Parameter{grammar.Return()}),
			grammar.Is(grammar.WordOf("never"), []grammar.Parameter{grammar.True("hit")}),
		))

	toks := lexSimple(t, "a")
	res, err := Parse(g, toks, "a", "")
	require.NoError(t, err)
	bv := res.Entry.Variables["hit"].(*BooleanVar)
	assert.False(t, bv.Value)
}

// Back rewinds the cursor by n tokens, letting a later rule re-match a
// token a prior rule already consumed (here, "b" is captured twice).
func TestBackRewindsCursor(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		DeclareVariable("first", grammar.KindNodeSlot).
		DeclareVariable("second", grammar.KindNodeSlot).
		WithRules(
			grammar.Is(grammar.TokenOf(lexer.Text()), nil),
			grammar.Is(grammar.TokenOf(lexer.Text()), []grammar.Parameter{grammar.Set("first"), grammar.Back(2)}),
			grammar.Is(grammar.TokenOf(lexer.Text()), []grammar.Parameter{grammar.Set("second")}),
		))

	toks := lexSimple(t, "a b")
	res, err := Parse(g, toks, "a b", "")
	require.NoError(t, err)
	first := res.Entry.Variables["first"].(*NodeSlotVar)
	second := res.Entry.Variables["second"].(*NodeSlotVar)
	require.NotNil(t, first.Value)
	require.NotNil(t, second.Value)
	assert.Equal(t, first.Value.Token.Offset, second.Value.Token.Offset)
}

// Command{Compare}: Number comparisons against equal operands satisfy
// Equal, GreaterOrEqual and LessOrEqual simultaneously.
func TestCompareNumberEqualSatisfiesOrderingToo(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		DeclareVariable("a", grammar.KindNumber).
		DeclareVariable("b", grammar.KindNumber).
		DeclareVariable("matched", grammar.KindBoolean).
		WithRules(
			// a and b are both zero-valued Number vars by default: equal.
			grammar.CommandRule(grammar.Compare("a", grammar.CmpGreaterOrEqual, "b",
				grammar.Is(grammar.TokenOf(lexer.EOF()), []grammar.Parameter{grammar.True("matched")}),
			)),
		))

	toks := lexSimple(t, "")
	res, err := Parse(g, toks, "", "")
	require.NoError(t, err)
	bv := res.Entry.Variables["matched"].(*BooleanVar)
	assert.True(t, bv.Value)
}

func TestCompareNodeSlotByNodeName(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("word").
		WithRules(grammar.Is(grammar.TokenOf(lexer.Text()), nil)))
	g.InsertNode(grammar.NewNodeDefinition("entry").
		DeclareVariable("a", grammar.KindNodeSlot).
		DeclareVariable("b", grammar.KindNodeSlot).
		DeclareVariable("same", grammar.KindBoolean).
		WithRules(
			grammar.Is(grammar.NodeOf("word"), []grammar.Parameter{grammar.Set("a")}),
			grammar.Is(grammar.NodeOf("word"), []grammar.Parameter{grammar.Set("b")}),
			grammar.CommandRule(grammar.Compare("a", grammar.CmpEqual, "b",
				grammar.Is(grammar.TokenOf(lexer.EOF()), []grammar.Parameter{grammar.True("same")}),
			)),
			grammar.CommandRule(grammar.SetHardError(false)),
		))

	toks := lexSimple(t, "foo bar")
	res, err := Parse(g, toks, "foo bar", "")
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.True(t, res.Entry.Variables["same"].(*BooleanVar).Value)
}

// Developer errors: a reference to an undeclared node is a developer
// error and must propagate rather than be absorbed as a soft mismatch,
// even from inside an IsOneOf.
func TestUndefinedNodeReferenceIsDeveloperError(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		WithRules(grammar.IsOneOf(
			grammar.Alternative{Token: grammar.NodeOf("missing")},
			grammar.Alternative{Token: grammar.WordOf("x")},
		)))

	toks := lexSimple(t, "x")
	_, err := Parse(g, toks, "x", "")
	require.Error(t, err)
	assert.True(t, DeveloperError(err))
	pe := err.(*ParseError)
	assert.Equal(t, NodeNotFound, pe.Kind)
}

func TestUndeclaredVariableSetIsDeveloperError(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		WithRules(grammar.Is(grammar.TokenOf(lexer.Text()), []grammar.Parameter{grammar.Set("nope")})))

	toks := lexSimple(t, "x")
	_, err := Parse(g, toks, "x", "")
	require.Error(t, err)
	assert.True(t, DeveloperError(err))
	pe := err.(*ParseError)
	assert.Equal(t, VariableNotFound, pe.Kind)
}

func TestSetOnBooleanIsDeveloperError(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		DeclareVariable("flag", grammar.KindBoolean).
		WithRules(grammar.Is(grammar.TokenOf(lexer.Text()), []grammar.Parameter{grammar.Set("flag")})))

	toks := lexSimple(t, "x")
	_, err := Parse(g, toks, "x", "")
	require.Error(t, err)
	pe := err.(*ParseError)
	assert.Equal(t, CannotSetVariable, pe.Kind)
}

// Whitespace and end-of-line tokens are skipped before a match. matchToken
// does this for Token/Word/Enumerator/Node matches alike; this test
// exercises the Word case.
func TestWhitespaceSkippedBeforeWordMatch(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		WithRules(grammar.Is(grammar.WordOf("hi"), nil)))

	toks := lexSimple(t, "   \n hi")
	res, err := Parse(g, toks, "   \n hi", "")
	require.NoError(t, err)
	assert.NotNil(t, res)
}

// Declared globals are reachable and mutable from any node via the
// Global/CountGlobal/TrueGlobal parameters.
func TestGlobalVariableCapture(t *testing.T) {
	g := grammar.New()
	g.DeclareGlobal("seen", grammar.KindNodeList)
	g.InsertNode(grammar.NewNodeDefinition("entry").
		WithRules(grammar.While(grammar.TokenOf(lexer.Text()), []grammar.Parameter{grammar.Global("seen")})))

	toks := lexSimple(t, "a b")
	res, err := Parse(g, toks, "a b", "")
	require.NoError(t, err)
	lv := res.Globals["seen"].(*NodeListVar)
	assert.Len(t, lv.Values, 2)
}

// Cursor safety (testable property 1): for a successful parse_node call
// the cursor never exceeds the token vector length.
func TestCursorNeverExceedsTokenLength(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		WithRules(grammar.While(grammar.TokenOf(lexer.Text()), nil)))

	toks := lexSimple(t, "a b c")
	res, err := Parse(g, toks, "a b c", "")
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Entry.LastTokenIdx+1, len(toks))
}

func TestMaybeOneOfFallsThroughToIsntRules(t *testing.T) {
	g := grammar.New()
	g.InsertNode(grammar.NewNodeDefinition("entry").
		DeclareVariable("fallback", grammar.KindBoolean).
		WithRules(grammar.MaybeOneOf(
			[]grammar.Rule{grammar.Is(grammar.TokenOf(lexer.Text()), []grammar.Parameter{grammar.True("fallback")})},
			grammar.Alternative{Token: grammar.WordOf("nope")},
		)))

	toks := lexSimple(t, "x")
	res, err := Parse(g, toks, "x", "")
	require.NoError(t, err)
	bv := res.Entry.Variables["fallback"].(*BooleanVar)
	assert.True(t, bv.Value)
}
