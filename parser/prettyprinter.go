package parser

import (
	"bytes"
	"fmt"
	"sort"

	"devt.de/krotik/common/stringutil"
)

/*
PrettyPrint renders an AST node and its descendants as indented text,
useful for tests and the demo CLI. It is not part of the core parsing
API and Parse never calls it.
*/
func PrettyPrint(n *ASTNode) (string, error) {
	if n == nil {
		return "", nil
	}
	var buf bytes.Buffer
	writeNode(&buf, n, 0)
	return buf.String(), nil
}

func writeNode(buf *bytes.Buffer, n *ASTNode, indent int) {
	buf.WriteString(stringutil.GenerateRollingString(" ", indent*2))

	if n.Empty() {
		fmt.Fprintf(buf, "%s []\n", n.Name)
		return
	}
	fmt.Fprintf(buf, "%s [%d:%d]\n", n.Name, n.FirstTokenIdx, n.LastTokenIdx)

	for _, name := range sortedVarNames(n.Variables) {
		switch v := n.Variables[name].(type) {
		case *NodeSlotVar:
			if v.Value == nil {
				continue
			}
			buf.WriteString(stringutil.GenerateRollingString(" ", (indent+1)*2))
			fmt.Fprintf(buf, "%s:\n", name)
			if v.Value.Kind == CapturedNode {
				writeNode(buf, v.Value.Node, indent+2)
			}
		case *NodeListVar:
			for _, c := range v.Values {
				if c.Kind != CapturedNode {
					continue
				}
				buf.WriteString(stringutil.GenerateRollingString(" ", (indent+1)*2))
				fmt.Fprintf(buf, "%s[]:\n", name)
				writeNode(buf, c.Node, indent+2)
			}
		case *BooleanVar:
			buf.WriteString(stringutil.GenerateRollingString(" ", (indent+1)*2))
			fmt.Fprintf(buf, "%s = %v\n", name, v.Value)
		case *NumberVar:
			buf.WriteString(stringutil.GenerateRollingString(" ", (indent+1)*2))
			fmt.Fprintf(buf, "%s = %d\n", name, v.Value)
		}
	}
}

func sortedVarNames(vars map[string]Variable) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
