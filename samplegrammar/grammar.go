package samplegrammar

import (
	"github.com/parsekit/rparse/grammar"
	"github.com/parsekit/rparse/lexer"
)

// EntryNode is the top-level node name NewGrammar declares its
// import/function declaration list under.
const EntryNode = "entry"

/*
NewLexer builds the lexer configuration the sample grammar expects:
every punctuation/operator literal, plus the number- and string-merging
preprocessors, in that order (numbers first, since a malformed float
should be reported before string-quote scanning ever sees it).
*/
func NewLexer() *lexer.Lexer {
	lx := lexer.New()
	lx.AddLiterals(Literals...)
	lx.AddPreprocessor(mergeNumbers)
	lx.AddPreprocessor(mergeStrings)
	return lx
}

/*
NewGrammar builds the demonstration grammar: top-level import/function
declarations, typed parameters, reference types and dotted paths. Ported
from the ruda reference grammar (original_source/ruda/src/lib.rs),
generalized to the Go rule-tree API instead of a hand-rolled Rust enum
literal.
*/
func NewGrammar() *grammar.Grammar {
	g := grammar.New()

	g.InsertEnumerator(grammar.NewEnumerator("operators",
		grammar.TokenOf(lexer.Literal("+=")),
		grammar.TokenOf(lexer.Literal("-=")),
		grammar.TokenOf(lexer.Literal("*=")),
		grammar.TokenOf(lexer.Literal("/=")),
		grammar.TokenOf(lexer.Literal("+")),
		grammar.TokenOf(lexer.Literal("-")),
		grammar.TokenOf(lexer.Literal("*")),
		grammar.TokenOf(lexer.Literal("/")),
		grammar.TokenOf(lexer.Literal("<=")),
		grammar.TokenOf(lexer.Literal(">=")),
		grammar.TokenOf(lexer.Literal("<")),
		grammar.TokenOf(lexer.Literal(">")),
		grammar.TokenOf(lexer.Literal("==")),
		grammar.TokenOf(lexer.Literal("=")),
		grammar.TokenOf(lexer.Literal("!=")),
		grammar.TokenOf(lexer.Literal("&&")),
	))

	g.InsertEnumerator(grammar.NewEnumerator("keywords",
		grammar.WordOf("if"), grammar.WordOf("else"), grammar.WordOf("while"),
		grammar.WordOf("for"), grammar.WordOf("return"), grammar.WordOf("break"),
		grammar.WordOf("continue"), grammar.WordOf("fun"), grammar.WordOf("let"),
		grammar.WordOf("const"), grammar.WordOf("enum"), grammar.WordOf("struct"),
		grammar.WordOf("impl"), grammar.WordOf("trait"), grammar.WordOf("type"),
		grammar.WordOf("use"), grammar.WordOf("as"), grammar.WordOf("error"),
		grammar.WordOf("switch"), grammar.WordOf("new"), grammar.WordOf("try"),
		grammar.WordOf("catch"),
	))

	g.InsertEnumerator(grammar.NewEnumerator("unary_operators",
		grammar.TokenOf(lexer.Literal("!")),
		grammar.TokenOf(lexer.Literal("-")),
	))

	g.InsertEnumerator(grammar.NewEnumerator("setting_operators",
		grammar.TokenOf(lexer.Literal("=")),
		grammar.TokenOf(lexer.Literal("+=")),
		grammar.TokenOf(lexer.Literal("-=")),
		grammar.TokenOf(lexer.Literal("*=")),
		grammar.TokenOf(lexer.Literal("/=")),
	))

	g.InsertEnumerator(grammar.NewEnumerator("types",
		grammar.WordOf("char"), grammar.WordOf("int"), grammar.WordOf("float"),
		grammar.WordOf("bool"), grammar.WordOf("string"), grammar.WordOf("uint"),
	))

	g.InsertEnumerator(grammar.NewEnumerator("numbers",
		grammar.TokenOf(lexer.Complex("int")),
		grammar.TokenOf(lexer.Complex("float")),
		grammar.TokenOf(lexer.Complex("uint")),
	))

	g.InsertEnumerator(grammar.NewEnumerator("literals",
		grammar.TokenOf(lexer.Complex("string")),
		grammar.TokenOf(lexer.Complex("char")),
		grammar.EnumeratorOf("numbers"),
	))

	g.InsertNode(grammar.NewNodeDefinition(EntryNode).
		DeclareVariable("list", grammar.KindNodeList).
		WithRules(
			grammar.Loop(
				grammar.IsOneOf(
					grammar.Alternative{Token: grammar.NodeOf("KWImport"), Params: []grammar.Parameter{grammar.Set("list")}},
					grammar.Alternative{Token: grammar.NodeOf("KWFunction"), Params: []grammar.Parameter{grammar.Set("list")}},
					grammar.Alternative{
						Token:  grammar.TokenOf(lexer.EOF()),
						Params: []grammar.Parameter{grammar.Goto("end")},
					},
				),
			),
			grammar.CommandRule(grammar.Label("end")),
		))

	g.InsertNode(grammar.NewNodeDefinition("KWImport").
		DeclareVariable("file", grammar.KindNodeSlot).
		DeclareVariable("alias", grammar.KindNodeSlot).
		WithRules(
			grammar.Is(grammar.WordOf("import"), []grammar.Parameter{grammar.HardError(true)},
				grammar.Is(grammar.TokenOf(lexer.Complex("string")), []grammar.Parameter{grammar.Set("file")}),
			),
			grammar.Maybe(grammar.WordOf("as"), nil,
				[]grammar.Rule{grammar.Is(grammar.TokenOf(lexer.Text()), []grammar.Parameter{grammar.Set("alias")})},
				nil,
			),
		))

	g.InsertNode(grammar.NewNodeDefinition("KWFunction").
		DeclareVariable("identifier", grammar.KindNodeSlot).
		DeclareVariable("parameters", grammar.KindNodeList).
		DeclareVariable("return_type", grammar.KindNodeSlot).
		DeclareVariable("body", grammar.KindNodeSlot).
		WithRules(
			grammar.Is(grammar.WordOf("fun"), []grammar.Parameter{grammar.HardError(true)}),
			grammar.Is(grammar.TokenOf(lexer.Text()), []grammar.Parameter{grammar.Set("identifier")}),
			grammar.Is(grammar.TokenOf(lexer.Literal("(")), nil),
			grammar.Maybe(grammar.NodeOf("parameter"), []grammar.Parameter{grammar.Set("parameters")},
				[]grammar.Rule{
					grammar.While(grammar.TokenOf(lexer.Literal(",")), nil,
						grammar.Is(grammar.NodeOf("parameter"), []grammar.Parameter{grammar.Set("parameters")}),
					),
				},
				nil,
			),
			grammar.Is(grammar.TokenOf(lexer.Literal(")")), nil),
			grammar.Maybe(grammar.TokenOf(lexer.Literal(":")), nil,
				[]grammar.Rule{grammar.Is(grammar.NodeOf("type"), []grammar.Parameter{grammar.Set("return_type")})},
				nil,
			),
			grammar.Is(grammar.NodeOf("block"), []grammar.Parameter{grammar.Set("body")}),
		))

	g.InsertNode(grammar.NewNodeDefinition("block").
		DeclareVariable("nodes", grammar.KindNodeList).
		WithRules(
			grammar.Is(grammar.TokenOf(lexer.Literal("{")), []grammar.Parameter{grammar.HardError(true)}),
			grammar.Until(grammar.TokenOf(lexer.Literal("}")), nil,
				grammar.Is(grammar.TokenOf(lexer.Literal("}")), nil),
			),
		))

	g.InsertNode(grammar.NewNodeDefinition("parameter").
		DeclareVariable("identifier", grammar.KindNodeSlot).
		DeclareVariable("type", grammar.KindNodeSlot).
		WithRules(
			grammar.Is(grammar.TokenOf(lexer.Text()), []grammar.Parameter{grammar.Set("identifier")}),
			grammar.Is(grammar.TokenOf(lexer.Literal(":")), nil),
			grammar.Is(grammar.NodeOf("type"), []grammar.Parameter{grammar.Set("type")}),
		))

	g.InsertNode(grammar.NewNodeDefinition("type").
		DeclareVariable("refs", grammar.KindNumber).
		DeclareVariable("path", grammar.KindNodeSlot).
		WithRules(
			grammar.While(grammar.TokenOf(lexer.Literal("&")), []grammar.Parameter{grammar.Count("refs")}),
			grammar.Is(grammar.NodeOf("path"), []grammar.Parameter{grammar.Set("path")}),
		))

	g.InsertNode(grammar.NewNodeDefinition("path").
		DeclareVariable("nodes", grammar.KindNodeList).
		WithRules(
			grammar.Is(grammar.TokenOf(lexer.Text()), []grammar.Parameter{grammar.Set("nodes")}),
			grammar.While(grammar.TokenOf(lexer.Literal(".")), nil,
				grammar.Is(grammar.TokenOf(lexer.Text()), []grammar.Parameter{grammar.Set("nodes")}),
			),
		))

	return g
}
