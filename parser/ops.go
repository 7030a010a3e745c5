package parser

import "github.com/parsekit/rparse/grammar"

/*
setVariable implements the Set/Global parameter: it captures value into
a NodeSlot (overwriting any previous capture) or appends it to a
NodeList. Any other declared kind cannot be targeted by Set.
*/
func (p *interp) setVariable(vars map[string]Variable, name string, value Captured) error {
	v, ok := vars[name]
	if !ok {
		return &ParseError{Kind: VariableNotFound, Name: name}
	}
	switch sv := v.(type) {
	case *NodeSlotVar:
		c := value
		sv.Value = &c
	case *NodeListVar:
		sv.Values = append(sv.Values, value)
	default:
		return &ParseError{Kind: CannotSetVariable, Name: name, VarKind: v.Kind()}
	}
	return nil
}

/*
countVariable implements the Count/CountGlobal parameter: increments a
Number variable by one.
*/
func (p *interp) countVariable(vars map[string]Variable, name string) error {
	v, ok := vars[name]
	if !ok {
		return &ParseError{Kind: VariableNotFound, Name: name}
	}
	nv, ok := v.(*NumberVar)
	if !ok {
		return &ParseError{Kind: UncountableVariable, Name: name, VarKind: v.Kind()}
	}
	nv.Value++
	return nil
}

/*
boolVariable implements the True/False/TrueGlobal/FalseGlobal parameters:
sets a Boolean variable's value.
*/
func (p *interp) boolVariable(vars map[string]Variable, name string, val bool) error {
	v, ok := vars[name]
	if !ok {
		return &ParseError{Kind: VariableNotFound, Name: name}
	}
	bv, ok := v.(*BooleanVar)
	if !ok {
		return &ParseError{Kind: UncountableVariable, Name: name, VarKind: v.Kind()}
	}
	bv.Value = val
	return nil
}

/*
compare implements Command{Compare}: it looks up two node-local variables
by name and reports whether op is among the comparisons their values
simultaneously satisfy.
*/
func (p *interp) compare(node *ASTNode, left, right string, op grammar.Comparison) (bool, error) {
	lv, ok := node.Variables[left]
	if !ok {
		return false, &ParseError{Kind: VariableNotFound, Name: left}
	}
	rv, ok := node.Variables[right]
	if !ok {
		return false, &ParseError{Kind: VariableNotFound, Name: right}
	}

	for _, c := range p.compareResults(lv, rv) {
		if c == op {
			return true, nil
		}
	}
	return false, nil
}

/*
compareResults computes every Comparison simultaneously satisfied between
two variables. NodeSlot compares by node-name equality (for captured
nodes) or byte-identical source text (for captured tokens); Boolean
compares by equality only; Number produces a full ordering; NodeList and
any kind mismatch are always NotEqual.
*/
func (p *interp) compareResults(l, r Variable) []grammar.Comparison {
	switch lv := l.(type) {
	case *NodeSlotVar:
		rv, ok := r.(*NodeSlotVar)
		if !ok {
			return []grammar.Comparison{grammar.CmpNotEqual}
		}
		if lv.Value == nil && rv.Value == nil {
			return []grammar.Comparison{grammar.CmpEqual}
		}
		if lv.Value == nil || rv.Value == nil {
			return []grammar.Comparison{grammar.CmpNotEqual}
		}
		if lv.Value.Kind == CapturedNode && rv.Value.Kind == CapturedNode {
			if lv.Value.Node.Name == rv.Value.Node.Name {
				return []grammar.Comparison{grammar.CmpEqual}
			}
			return []grammar.Comparison{grammar.CmpNotEqual}
		}
		if lv.Value.Kind == CapturedToken && rv.Value.Kind == CapturedToken {
			if p.stringify(lv.Value.Token) == p.stringify(rv.Value.Token) {
				return []grammar.Comparison{grammar.CmpEqual}
			}
			return []grammar.Comparison{grammar.CmpNotEqual}
		}
		return []grammar.Comparison{grammar.CmpNotEqual}

	case *BooleanVar:
		rv, ok := r.(*BooleanVar)
		if !ok {
			return []grammar.Comparison{grammar.CmpNotEqual}
		}
		if lv.Value == rv.Value {
			return []grammar.Comparison{grammar.CmpEqual}
		}
		return []grammar.Comparison{grammar.CmpNotEqual}

	case *NumberVar:
		rv, ok := r.(*NumberVar)
		if !ok {
			return []grammar.Comparison{grammar.CmpNotEqual}
		}
		if lv.Value == rv.Value {
			return []grammar.Comparison{grammar.CmpEqual, grammar.CmpGreaterOrEqual, grammar.CmpLessOrEqual}
		}
		res := []grammar.Comparison{grammar.CmpNotEqual}
		if lv.Value > rv.Value {
			res = append(res, grammar.CmpGreater, grammar.CmpGreaterOrEqual)
		} else {
			res = append(res, grammar.CmpLess, grammar.CmpLessOrEqual)
		}
		return res

	default: // NodeListVar
		return []grammar.Comparison{grammar.CmpNotEqual}
	}
}
