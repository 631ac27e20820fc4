package model

import wserrors "github.com/mj1618/wsicons/internal/errors"

// FindFocusedWorkspace returns the workspace that holds input focus.
//
// Focus may rest on the workspace itself (an empty workspace) or on a
// window inside it; in the latter case the nearest workspace ancestor
// is returned. Returns a WORKSPACE_NOT_FOUND error when neither applies.
func FindFocusedWorkspace(root *Node) (*Node, error) {
	if root == nil {
		return nil, wserrors.NewWorkspaceNotFound()
	}
	var ancestors []*Node
	if ws := findFocused(root, &ancestors); ws != nil {
		return ws, nil
	}
	return nil, wserrors.NewWorkspaceNotFound()
}

// findFocused walks n depth first. ancestors holds the path from the
// root down to n's parent; the nearest ancestor is the last element.
func findFocused(n *Node, ancestors *[]*Node) *Node {
	if n.Focused {
		switch {
		case n.Type == NodeWorkspace:
			return n
		case n.Type.IsContainer():
			for i := len(*ancestors) - 1; i >= 0; i-- {
				if (*ancestors)[i].Type == NodeWorkspace {
					return (*ancestors)[i]
				}
			}
		}
	}

	*ancestors = append(*ancestors, n)
	defer func() { *ancestors = (*ancestors)[:len(*ancestors)-1] }()

	for _, child := range n.Nodes {
		if ws := findFocused(child, ancestors); ws != nil {
			return ws
		}
	}
	for _, child := range n.FloatingNodes {
		if ws := findFocused(child, ancestors); ws != nil {
			return ws
		}
	}
	return nil
}
