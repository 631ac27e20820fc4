package model

// NodeType is the "type" field of a node in the IPC get_tree reply.
type NodeType string

const (
	NodeRoot        NodeType = "root"
	NodeOutput      NodeType = "output"
	NodeWorkspace   NodeType = "workspace"
	NodeCon         NodeType = "con"
	NodeFloatingCon NodeType = "floating_con"
	NodeDockArea    NodeType = "dockarea"
)

// IsContainer reports whether t is an ordinary or floating container.
func (t NodeType) IsContainer() bool {
	return t == NodeCon || t == NodeFloatingCon
}

// WindowProperties holds the X11 attributes of an Xwayland or i3 window.
type WindowProperties struct {
	Class    string `json:"class,omitempty"    yaml:"class,omitempty"`
	Instance string `json:"instance,omitempty" yaml:"instance,omitempty"`
	Title    string `json:"title,omitempty"    yaml:"title,omitempty"`
}

// Node is a vertex of the compositor's layout tree.
// Ordinary and floating children are kept in separate, ordered lists.
type Node struct {
	ID               int64             `json:"id"                          yaml:"id"`
	Type             NodeType          `json:"type"                        yaml:"type"`
	Name             *string           `json:"name"                        yaml:"name,omitempty"`
	Num              *int              `json:"num,omitempty"               yaml:"num,omitempty"`
	Focused          bool              `json:"focused"                     yaml:"focused,omitempty"`
	AppID            *string           `json:"app_id,omitempty"            yaml:"app_id,omitempty"`
	PID              int               `json:"pid,omitempty"               yaml:"pid,omitempty"`
	WindowProperties *WindowProperties `json:"window_properties,omitempty" yaml:"window_properties,omitempty"`
	Nodes            []*Node           `json:"nodes"                       yaml:"nodes,omitempty"`
	FloatingNodes    []*Node           `json:"floating_nodes"              yaml:"floating_nodes,omitempty"`
}

// NameOr returns the node name, or fallback when it has none.
func (n *Node) NameOr(fallback string) string {
	if n == nil || n.Name == nil {
		return fallback
	}
	return *n.Name
}

// Window returns the window view of n. Only meaningful for nodes
// returned by CollectWindows.
func (n *Node) Window() Window {
	w := Window{ID: n.ID, Name: n.NameOr(""), PID: n.PID}
	if n.AppID != nil {
		w.AppID = *n.AppID
	}
	if n.WindowProperties != nil {
		w.Class = n.WindowProperties.Class
		w.Instance = n.WindowProperties.Instance
	}
	return w
}
