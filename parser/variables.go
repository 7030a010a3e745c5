package parser

import "github.com/parsekit/rparse/grammar"

/*
Variable is a runtime variable slot instantiated from a grammar-declared
VariableKind. Each concrete implementation is a small mutable struct so
that Set/Count/True/False execution mutates in place.
*/
type Variable interface {
	Kind() grammar.VariableKind
}

/*
NodeSlotVar holds at most one captured value, overwritten by each Set.
*/
type NodeSlotVar struct {
	Value *Captured
}

/*
Kind implements Variable.
*/
func (v *NodeSlotVar) Kind() grammar.VariableKind { return grammar.KindNodeSlot }

/*
NodeListVar accumulates every captured value a Set targets it with.
*/
type NodeListVar struct {
	Values []Captured
}

/*
Kind implements Variable.
*/
func (v *NodeListVar) Kind() grammar.VariableKind { return grammar.KindNodeList }

/*
BooleanVar is a scalar flag, touched only by True/False and read by
Compare.
*/
type BooleanVar struct {
	Value bool
}

/*
Kind implements Variable.
*/
func (v *BooleanVar) Kind() grammar.VariableKind { return grammar.KindBoolean }

/*
NumberVar is a scalar counter, touched only by Count and read by Compare.
*/
type NumberVar struct {
	Value int32
}

/*
Kind implements Variable.
*/
func (v *NumberVar) Kind() grammar.VariableKind { return grammar.KindNumber }

/*
newVariables instantiates a fresh runtime slot for every declared
variable kind, keyed by name.
*/
func newVariables(decls map[string]grammar.VariableKind) map[string]Variable {
	vars := make(map[string]Variable, len(decls))
	for name, kind := range decls {
		switch kind {
		case grammar.KindNodeSlot:
			vars[name] = &NodeSlotVar{}
		case grammar.KindNodeList:
			vars[name] = &NodeListVar{}
		case grammar.KindBoolean:
			vars[name] = &BooleanVar{}
		case grammar.KindNumber:
			vars[name] = &NumberVar{}
		}
	}
	return vars
}
