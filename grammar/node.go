package grammar

/*
NodeDefinition is a named grammar node: a rule tree plus the node-local
variable slots it declares. Node references elsewhere in a grammar are by
name, not by pointer, so that recursive/cyclic productions don't require
cyclic Go ownership.
*/
type NodeDefinition struct {
	Name      string
	Variables map[string]VariableKind
	Rules     []Rule
}

/*
NewNodeDefinition creates an empty node with the given name, ready to
have variables declared and rules attached.
*/
func NewNodeDefinition(name string) *NodeDefinition {
	return &NodeDefinition{Name: name, Variables: map[string]VariableKind{}}
}

/*
DeclareVariable adds a node-local variable slot of the given kind.
*/
func (n *NodeDefinition) DeclareVariable(name string, kind VariableKind) *NodeDefinition {
	n.Variables[name] = kind
	return n
}

/*
WithRules attaches the node's top-level rule list.
*/
func (n *NodeDefinition) WithRules(rules ...Rule) *NodeDefinition {
	n.Rules = rules
	return n
}

/*
Enumerator is a named, ordered alternation set of match-tokens. Order is
significant: the first value that matches wins, so more specific patterns
must be declared before more general ones.
*/
type Enumerator struct {
	Name   string
	Values []MatchToken
}

/*
NewEnumerator creates a named enumerator with the given ordered values.
*/
func NewEnumerator(name string, values ...MatchToken) Enumerator {
	return Enumerator{Name: name, Values: values}
}
