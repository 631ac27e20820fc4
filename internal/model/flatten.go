package model

// FlatNode is a tree node with a path breadcrumb instead of children.
type FlatNode struct {
	ID       int64    `yaml:"id"                 json:"id"`
	Type     NodeType `yaml:"type"               json:"type"`
	Name     string   `yaml:"name,omitempty"     json:"name,omitempty"`
	Num      *int     `yaml:"num,omitempty"      json:"num,omitempty"`
	AppID    string   `yaml:"app_id,omitempty"   json:"app_id,omitempty"`
	Class    string   `yaml:"class,omitempty"    json:"class,omitempty"`
	Focused  bool     `yaml:"focused,omitempty"  json:"focused,omitempty"`
	Floating bool     `yaml:"floating,omitempty" json:"floating,omitempty"`
	Path     string   `yaml:"path"               json:"path"`
}

// FlattenTree converts a layout tree into a flat list in the same
// depth-first order CollectWindows uses. Each node's path shows its
// location using node types joined with " > ".
func FlattenTree(root *Node) []FlatNode {
	var result []FlatNode
	if root != nil {
		flattenRecursive(root, "", false, &result)
	}
	return result
}

func flattenRecursive(n *Node, parentPath string, floating bool, result *[]FlatNode) {
	currentPath := string(n.Type)
	if parentPath != "" {
		currentPath = parentPath + " > " + string(n.Type)
	}

	flat := FlatNode{
		ID:       n.ID,
		Type:     n.Type,
		Name:     n.NameOr(""),
		Num:      n.Num,
		Focused:  n.Focused,
		Floating: floating,
		Path:     currentPath,
	}
	if n.AppID != nil {
		flat.AppID = *n.AppID
	}
	if n.WindowProperties != nil {
		flat.Class = n.WindowProperties.Class
	}
	*result = append(*result, flat)

	for _, child := range n.Nodes {
		flattenRecursive(child, currentPath, false, result)
	}
	for _, child := range n.FloatingNodes {
		flattenRecursive(child, currentPath, true, result)
	}
}

// FlattenWindows is FlattenTree restricted to the nodes CollectWindows
// returns, i.e. the windows in label order with their path breadcrumbs.
func FlattenWindows(root *Node) []FlatNode {
	isWindow := make(map[int64]bool)
	for _, n := range CollectWindows(root) {
		isWindow[n.ID] = true
	}
	nodes := []FlatNode{}
	for _, n := range FlattenTree(root) {
		if isWindow[n.ID] {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
