package parser

/*
ASTNode is one node of a finished (or partially finished, on failure)
parse tree: the grammar node it was produced from, its captured
variables, the span of tokens it covers, and whether it committed via
HardError during its own rule walk.

An empty span - a node that matched no tokens at all - is represented by
FirstTokenIdx == LastTokenIdx+1, i.e. [FirstTokenIdx, FirstTokenIdx).
*/
type ASTNode struct {
	Name          string
	Variables     map[string]Variable
	FirstTokenIdx int
	LastTokenIdx  int
	HardError     bool
}

/*
Empty reports whether this node's span is empty.
*/
func (n *ASTNode) Empty() bool {
	return n.LastTokenIdx < n.FirstTokenIdx
}

/*
Child looks up a NodeSlot-kind variable and returns the node it captured,
if any was set.
*/
func (n *ASTNode) Child(name string) (*ASTNode, bool) {
	v, ok := n.Variables[name].(*NodeSlotVar)
	if !ok || v.Value == nil || v.Value.Kind != CapturedNode {
		return nil, false
	}
	return v.Value.Node, true
}

/*
Children looks up a NodeList-kind variable and returns every node it
accumulated, skipping token captures.
*/
func (n *ASTNode) Children(name string) []*ASTNode {
	v, ok := n.Variables[name].(*NodeListVar)
	if !ok {
		return nil
	}
	var out []*ASTNode
	for _, c := range v.Values {
		if c.Kind == CapturedNode {
			out = append(out, c.Node)
		}
	}
	return out
}
