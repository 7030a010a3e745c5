package grammar

/*
Grammar is a pure-data description of a language: named nodes, named
enumerators, and declared global variables. A Grammar is built once and
is safe for concurrent use by any number of parses afterwards, because
nothing in this package ever mutates a Grammar's contents after
insertion; callers are expected to finish building before sharing it.

References between nodes/enumerators are by name, not by pointer, so
grammars with mutually- or self-recursive productions don't need cyclic
Go values. Validity (that every referenced name actually exists) is
checked lazily, by the parser, the first time a reference is followed —
not here at construction time.
*/
type Grammar struct {
	Nodes       map[string]*NodeDefinition
	Enumerators map[string]Enumerator
	Globals     map[string]VariableKind
}

/*
New creates an empty Grammar.
*/
func New() *Grammar {
	return &Grammar{
		Nodes:       map[string]*NodeDefinition{},
		Enumerators: map[string]Enumerator{},
		Globals:     map[string]VariableKind{},
	}
}

/*
InsertNode adds or replaces a named node definition.
*/
func (g *Grammar) InsertNode(n *NodeDefinition) *Grammar {
	g.Nodes[n.Name] = n
	return g
}

/*
InsertEnumerator adds or replaces a named enumerator.
*/
func (g *Grammar) InsertEnumerator(e Enumerator) *Grammar {
	g.Enumerators[e.Name] = e
	return g
}

/*
DeclareGlobal declares a global variable of the given kind, reachable by
Global/CountGlobal/TrueGlobal/FalseGlobal parameters from any node.
*/
func (g *Grammar) DeclareGlobal(name string, kind VariableKind) *Grammar {
	g.Globals[name] = kind
	return g
}
