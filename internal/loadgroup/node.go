package loadgroup

// LoadCase names a single physical load case (e.g. DL, LL_Pattern)
type LoadCase string

// Kind describes how the children of a node take part in a combination
type Kind int

const (
	// Leaf is an elementary load case with no children
	Leaf Kind = iota

	// Additive children always act together (flat lists such as Dead: [DL, SDL])
	Additive

	// Alternative children are mutually exclusive; each one is a separate branch
	Alternative
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Additive:
		return "additive"
	case Alternative:
		return "alternative"
	default:
		return "unknown"
	}
}

// RootName is the name of the synthetic node holding the top-level groups
const RootName = "<root>"

// Edge is a named child of a node. The edge name is the key the parent uses
// for the child, which differs from Node.Name when the child is a shared
// reference to a top-level group.
type Edge struct {
	Name string
	Node *Node
}

// Node is a point in the load group hierarchy.
// Nodes are never mutated once Build returns.
type Node struct {
	Name string
	Kind Kind

	children []Edge
	index    map[string]int
}

func newLeaf(name string) *Node {
	return &Node{Name: name, Kind: Leaf}
}

func newGroup(name string, kind Kind) *Node {
	return &Node{Name: name, Kind: kind, index: make(map[string]int)}
}

// add appends a child edge, reporting false if the name is already taken
func (n *Node) add(name string, child *Node) bool {
	if _, ok := n.index[name]; ok {
		return false
	}
	n.index[name] = len(n.children)
	n.children = append(n.children, Edge{Name: name, Node: child})
	return true
}

// Case returns the load case of a leaf node
func (n *Node) Case() (LoadCase, bool) {
	if n.Kind != Leaf {
		return "", false
	}
	return LoadCase(n.Name), true
}

// Children returns the ordered child edges of the node
func (n *Node) Children() []Edge {
	out := make([]Edge, len(n.children))
	copy(out, n.children)
	return out
}

// Child looks up a direct child by its edge name
func (n *Node) Child(name string) (*Node, bool) {
	i, ok := n.index[name]
	if !ok {
		return nil, false
	}
	return n.children[i].Node, true
}
