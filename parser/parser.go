package parser

import (
	"fmt"

	"github.com/parsekit/rparse/config"
	"github.com/parsekit/rparse/grammar"
	"github.com/parsekit/rparse/lexer"
	"github.com/parsekit/rparse/util"
)

/*
DefaultEntry is the node name Parse looks up when entry is "".
*/
var DefaultEntry = config.Str(config.DefaultEntryNode)

/*
ParseResult is the outcome of a successful parse: the finished entry
node, the final state of every declared global variable, and the source
text the tokens were produced from (kept around so callers can slice out
token spans without re-threading the text themselves).
*/
type ParseResult struct {
	Entry   *ASTNode
	Globals map[string]Variable
	Text    string
}

/*
Parse runs the grammar's rule tree against tokens, starting from the
named entry node (DefaultEntry if entry is ""). A single Parse call owns
an exclusive cursor and AST; the grammar and lexer configuration that
produced tokens may be shared, unmodified, across any number of
concurrent Parse calls.
*/
func Parse(g *grammar.Grammar, tokens []lexer.Token, text string, entry string) (*ParseResult, error) {
	return ParseWithLogger(g, tokens, text, entry, util.NewLevelLogger(util.NewConsoleLogger(), util.LogLevelError))
}

/*
ParseWithLogger is Parse with an explicit trace/log destination for the
Print and Debug parameters. There are no Print or Debug commands; only
parameters write to the logger.
*/
func ParseWithLogger(g *grammar.Grammar, tokens []lexer.Token, text string, entry string, logger util.Logger) (*ParseResult, error) {
	if entry == "" {
		entry = DefaultEntry
	}

	p := &interp{
		grammar: g,
		tokens:  tokens,
		text:    text,
		globals: newVariables(g.Globals),
		logger:  logger,
	}

	node, err := p.parseNode(entry)
	if err != nil {
		return nil, err
	}

	return &ParseResult{Entry: node, Globals: p.globals, Text: text}, nil
}

/*
ctrlKind classifies the non-local control signal a rule walk can produce:
none (ordinary completion), a pending Goto looking for its Label, or a
Return ending the enclosing node's walk successfully.
*/
type ctrlKind int

const (
	ctrlNone ctrlKind = iota
	ctrlGoto
	ctrlReturn
)

type signal struct {
	kind  ctrlKind
	label string
}

var noSignal = signal{}

/*
interp holds the mutable state of a single, exclusively-owned parse: the
immutable grammar/token inputs, the shared global variables, the cursor,
and the logger used by Print/Debug.
*/
type interp struct {
	grammar *grammar.Grammar
	tokens  []lexer.Token
	text    string
	globals map[string]Variable
	cursor  int
	logger  util.Logger
}

/*
parseNode runs the named node's rule tree starting at the current
cursor. On success it returns the finished node and advances the cursor
past everything it consumed. On failure it returns the partially-built
node (so a caller matching Node(name) can inspect its HardError flag)
together with the error that ended the walk.
*/
func (p *interp) parseNode(name string) (*ASTNode, error) {
	def, ok := p.grammar.Nodes[name]
	if !ok {
		return &ASTNode{Name: name, FirstTokenIdx: p.cursor, LastTokenIdx: p.cursor - 1},
			&ParseError{Kind: NodeNotFound, Name: name}
	}

	node := &ASTNode{
		Name:          def.Name,
		Variables:     newVariables(def.Variables),
		FirstTokenIdx: p.cursor,
	}

	sig, err := p.runRules(def.Rules, node)
	if err != nil {
		node.LastTokenIdx = p.cursor - 1
		return node, err
	}

	if sig.kind == ctrlGoto {
		node.LastTokenIdx = p.cursor - 1
		return node, &ParseError{Kind: LabelNotFound, Name: sig.label, NodeName: name}
	}

	node.LastTokenIdx = p.cursor - 1
	return node, nil
}

/*
runRules executes a rule list in order, honoring non-local Goto/Return
signals: a Goto that names a Label present in rules resumes execution
right after that Label; any other signal (an unresolved Goto, or a
Return) stops this rule list and propagates to the caller unchanged.
*/
func (p *interp) runRules(rules []grammar.Rule, node *ASTNode) (signal, error) {
	i := 0
	for i < len(rules) {
		sig, err := p.execRule(rules[i], node)
		if err != nil {
			return sig, err
		}

		if sig.kind == ctrlGoto {
			if idx, ok := findLabel(rules, sig.label); ok {
				i = idx + 1
				continue
			}
			return sig, nil
		}

		if sig.kind == ctrlReturn {
			return sig, nil
		}

		i++
	}
	return noSignal, nil
}

func findLabel(rules []grammar.Rule, name string) (int, bool) {
	for i, r := range rules {
		if r.Kind == grammar.RuleCommand && r.Command.Kind == grammar.CmdLabel && r.Command.Name == name {
			return i, true
		}
	}
	return 0, false
}

/*
execRule dispatches a single rule. The returned error, when non-nil,
always ends the enclosing node's parse (the distinction between "soft,
rewindable" and "hard, committed" is made by the caller of
parser.matchToken's Node case, by inspecting the returned child node's
HardError flag - never here).
*/
func (p *interp) execRule(r grammar.Rule, node *ASTNode) (signal, error) {
	switch r.Kind {
	case grammar.RuleIs:
		val, matched, hard, err := p.matchToken(r.Token, node)
		if hard {
			return noSignal, err
		}
		if !matched {
			return noSignal, err
		}
		sig, perr := p.execParameters(r.Params, val, node)
		if perr != nil {
			return sig, perr
		}
		if sig.kind != ctrlNone {
			return sig, nil
		}
		if val.Kind != CapturedNode {
			p.cursor++
		}
		return p.runRules(r.Rules, node)

	case grammar.RuleIsnt:
		_, matched, hard, err := p.matchToken(r.Token, node)
		if hard {
			return noSignal, err
		}
		if matched {
			found := p.currentKind()
			p.cursor = node.FirstTokenIdx
			return noSignal, &ParseError{Kind: ExpectedToNotBe, Found: found, TokenIdx: p.cursor}
		}
		return p.runRules(r.Rules, node)

	case grammar.RuleIsOneOf:
		for _, alt := range r.Alternatives {
			val, matched, hard, err := p.matchToken(alt.Token, node)
			if hard {
				return noSignal, err
			}
			if !matched {
				continue
			}
			sig, perr := p.execParameters(alt.Params, val, node)
			if perr != nil {
				return sig, perr
			}
			if sig.kind != ctrlNone {
				return sig, nil
			}
			if val.Kind != CapturedNode {
				p.cursor++
			}
			return p.runRules(alt.Rules, node)
		}
		return noSignal, &ParseError{Kind: ExpectedToken, Expected: lexer.Text(), Found: p.currentKind(), TokenIdx: p.cursor}

	case grammar.RuleMaybe:
		val, matched, hard, err := p.matchToken(r.Token, node)
		if hard {
			return noSignal, err
		}
		if matched {
			sig, perr := p.execParameters(r.Params, val, node)
			if perr != nil {
				return sig, perr
			}
			if sig.kind != ctrlNone {
				return sig, nil
			}
			if val.Kind != CapturedNode {
				p.cursor++
			}
			return p.runRules(r.Rules, node)
		}
		return p.runRules(r.IsntRules, node)

	case grammar.RuleMaybeOneOf:
		for _, alt := range r.Alternatives {
			val, matched, hard, err := p.matchToken(alt.Token, node)
			if hard {
				return noSignal, err
			}
			if !matched {
				continue
			}
			sig, perr := p.execParameters(alt.Params, val, node)
			if perr != nil {
				return sig, perr
			}
			if sig.kind != ctrlNone {
				return sig, nil
			}
			if val.Kind != CapturedNode {
				p.cursor++
			}
			return p.runRules(alt.Rules, node)
		}
		return p.runRules(r.IsntRules, node)

	case grammar.RuleWhile:
		for {
			val, matched, hard, err := p.matchToken(r.Token, node)
			if hard {
				return noSignal, err
			}
			if !matched {
				return noSignal, nil
			}
			sig, perr := p.execParameters(r.Params, val, node)
			if perr != nil {
				return sig, perr
			}
			if sig.kind != ctrlNone {
				return sig, nil
			}
			if val.Kind != CapturedNode {
				p.cursor++
			}
			sig, err = p.runRules(r.Rules, node)
			if err != nil {
				return sig, err
			}
			if sig.kind != ctrlNone {
				return sig, nil
			}
		}

	case grammar.RuleUntil:
		for {
			val, matched, hard, err := p.matchToken(r.Token, node)
			if hard {
				return noSignal, err
			}
			if matched {
				sig, perr := p.execParameters(r.Params, val, node)
				if perr != nil {
					return sig, perr
				}
				if sig.kind != ctrlNone {
					return sig, nil
				}
				return p.runRules(r.Rules, node)
			}
			if p.cursor >= len(p.tokens)-1 {
				return noSignal, &ParseError{Kind: Eof, TokenIdx: p.cursor}
			}
			p.cursor++
		}

	case grammar.RuleLoop:
		for {
			sig, err := p.runRules(r.LoopRules, node)
			if err != nil {
				return sig, err
			}
			if sig.kind != ctrlNone {
				return sig, nil
			}
		}

	case grammar.RuleCommand:
		return p.execCommand(r.Command, node)
	}

	return noSignal, nil
}

/*
execCommand runs a standalone Command.
*/
func (p *interp) execCommand(cmd grammar.Command, node *ASTNode) (signal, error) {
	switch cmd.Kind {
	case grammar.CmdLabel:
		return noSignal, nil

	case grammar.CmdGoto:
		return signal{kind: ctrlGoto, label: cmd.Name}, nil

	case grammar.CmdCompare:
		ok, err := p.compare(node, cmd.Left, cmd.Right, cmd.Op)
		if err != nil {
			return noSignal, err
		}
		if ok {
			return p.runRules(cmd.Rules, node)
		}
		return noSignal, nil

	case grammar.CmdError:
		return noSignal, &ParseError{Kind: Message, Text: cmd.Message, TokenIdx: p.cursor}

	case grammar.CmdHardError:
		node.HardError = cmd.Set
		return noSignal, nil
	}
	return noSignal, nil
}

/*
execParameters runs a rule's parameters in order against the just-matched
value. A Goto or Return parameter ends the list immediately, without
running any parameters after it, and is returned as a signal rather than
an error.
*/
func (p *interp) execParameters(params []grammar.Parameter, value Captured, node *ASTNode) (signal, error) {
	for _, param := range params {
		switch param.Kind {
		case grammar.ParamSet:
			if err := p.setVariable(node.Variables, param.Name, value); err != nil {
				return noSignal, err
			}
		case grammar.ParamGlobal:
			if err := p.setVariable(p.globals, param.Name, value); err != nil {
				return noSignal, err
			}
		case grammar.ParamCount:
			if err := p.countVariable(node.Variables, param.Name); err != nil {
				return noSignal, err
			}
		case grammar.ParamCountGlobal:
			if err := p.countVariable(p.globals, param.Name); err != nil {
				return noSignal, err
			}
		case grammar.ParamTrue:
			if err := p.boolVariable(node.Variables, param.Name, true); err != nil {
				return noSignal, err
			}
		case grammar.ParamFalse:
			if err := p.boolVariable(node.Variables, param.Name, false); err != nil {
				return noSignal, err
			}
		case grammar.ParamTrueGlobal:
			if err := p.boolVariable(p.globals, param.Name, true); err != nil {
				return noSignal, err
			}
		case grammar.ParamFalseGlobal:
			if err := p.boolVariable(p.globals, param.Name, false); err != nil {
				return noSignal, err
			}
		case grammar.ParamHardError:
			node.HardError = param.Bool
		case grammar.ParamPrint:
			p.logger.LogInfo(param.Message)
		case grammar.ParamDebug:
			p.debugParam(param, node, value)
		case grammar.ParamBack:
			p.cursor -= param.N
			if p.cursor < 0 {
				p.cursor = 0
			}
		case grammar.ParamReturn:
			return signal{kind: ctrlReturn}, nil
		case grammar.ParamGoto:
			return signal{kind: ctrlGoto, label: param.Label}, nil
		}
	}
	return noSignal, nil
}

func (p *interp) debugParam(param grammar.Parameter, node *ASTNode, value Captured) {
	if param.HasDebugVar {
		v, ok := node.Variables[param.DebugVar]
		if ok {
			p.logger.LogDebug(fmt.Sprintf("%s.%s = %v", node.Name, param.DebugVar, v))
		}
		return
	}
	p.logger.LogDebug(fmt.Sprintf("%s: matched %v at token %d", node.Name, value, p.cursor))
}

func (p *interp) currentKind() lexer.TokenKind {
	if p.cursor < len(p.tokens) {
		return p.tokens[p.cursor].TokenKind
	}
	return lexer.EOF()
}
