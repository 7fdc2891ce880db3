package loadgroup

// Model is the immutable load group hierarchy.
// It is safe for concurrent readers.
type Model struct {
	root *Node
}

// Root returns the synthetic additive root holding the top-level groups
func (m *Model) Root() *Node {
	return m.root
}

// Groups returns the top-level group names in document order
func (m *Model) Groups() []string {
	names := make([]string, 0, len(m.root.children))
	for _, e := range m.root.children {
		names = append(names, e.Name)
	}
	return names
}

// Resolve walks the hierarchy from the root following each path segment
func (m *Model) Resolve(path ...string) (*Node, error) {
	if len(path) == 0 {
		return nil, &PathError{Reason: "empty path", Err: ErrPathNotFound}
	}
	n := m.root
	for _, seg := range path {
		child, ok := n.Child(seg)
		if !ok {
			return nil, &PathError{Path: path, Segment: seg, Err: ErrPathNotFound}
		}
		n = child
	}
	return n, nil
}

// LeavesUnder returns every load case reachable below n, in document order
// and without repeats.
func (m *Model) LeavesUnder(n *Node) []LoadCase {
	return leaves(n)
}

// Alternatives returns the branches of an alternative node, nil for any other kind
func (m *Model) Alternatives(n *Node) []Edge {
	if n == nil || n.Kind != Alternative {
		return nil
	}
	return n.Children()
}

// LoadCases returns all load cases in the hierarchy
func (m *Model) LoadCases() []LoadCase {
	return leaves(m.root)
}

// Contains reports whether c is a leaf of the hierarchy
func (m *Model) Contains(c LoadCase) bool {
	for _, l := range leaves(m.root) {
		if l == c {
			return true
		}
	}
	return false
}

func leaves(n *Node) []LoadCase {
	var out []LoadCase
	seen := make(map[LoadCase]bool)
	var walk func(*Node)
	walk = func(n *Node) {
		if c, ok := n.Case(); ok {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
			return
		}
		for _, e := range n.children {
			walk(e.Node)
		}
	}
	walk(n)
	return out
}
