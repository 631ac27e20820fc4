package model

import "strconv"

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func win(id int64, name string) *Node {
	return &Node{ID: id, Type: NodeCon, Name: strp(name)}
}

func floatWin(id int64, name string) *Node {
	return &Node{ID: id, Type: NodeFloatingCon, Name: strp(name)}
}

func workspace(id int64, num int, nodes []*Node, floating []*Node) *Node {
	return &Node{
		ID:            id,
		Type:          NodeWorkspace,
		Name:          strp(strconv.Itoa(num)),
		Num:           intp(num),
		Nodes:         nodes,
		FloatingNodes: floating,
	}
}

// tree wraps workspaces in root > output.
func tree(workspaces ...*Node) *Node {
	return &Node{
		ID:   1,
		Type: NodeRoot,
		Name: strp("root"),
		Nodes: []*Node{
			{ID: 2, Type: NodeOutput, Name: strp("eDP-1"), Nodes: workspaces},
		},
	}
}

func ids(nodes []*Node) []int64 {
	out := make([]int64, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}
