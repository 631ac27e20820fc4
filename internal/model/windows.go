package model

// CollectWindows returns every named con or floating_con under subtree,
// including subtree itself, in depth-first order: a node, then its
// ordinary children, then its floating children. The order is the
// left-to-right order of icons in a workspace label.
func CollectWindows(subtree *Node) []*Node {
	var result []*Node
	collectRecursive(subtree, &result)
	return result
}

func collectRecursive(n *Node, result *[]*Node) {
	if n == nil {
		return
	}
	// A named container is a window even when it has children of its own.
	if n.Type.IsContainer() && n.Name != nil {
		*result = append(*result, n)
	}
	for _, child := range n.Nodes {
		collectRecursive(child, result)
	}
	for _, child := range n.FloatingNodes {
		collectRecursive(child, result)
	}
}
