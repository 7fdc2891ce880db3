package loadgroup

import (
	"fmt"
	"strings"
)

// Document is the ordered list of top-level groups read from a group file
type Document []Group

// Group is a named group definition
type Group struct {
	Name string
	Def  Def
}

// Def holds exactly one of the three group forms:
//   - Ref: the name of another top-level group
//   - Groups: named subgroups, mutually exclusive
//   - Cases: a flat list of load cases acting together
//
// A Cases entry equal to a top-level group name is a reference to that group.
type Def struct {
	Cases  []string
	Ref    string
	Groups []Group
}

// CasesDef is shorthand for a flat list definition
func CasesDef(cases ...string) Def {
	return Def{Cases: cases}
}

// RefDef is shorthand for a reference to a top-level group
func RefDef(group string) Def {
	return Def{Ref: group}
}

// GroupsDef is shorthand for a definition with alternative subgroups
func GroupsDef(groups ...Group) Def {
	if groups == nil {
		groups = []Group{}
	}
	return Def{Groups: groups}
}

type builder struct {
	defs      map[string]Def
	built     map[string]*Node
	resolving map[string]bool
	stack     []string
}

// Build constructs the hierarchy from a group document, resolving group
// references into shared nodes and checking that alternatives stay exclusive.
func Build(doc Document) (*Model, error) {
	b := &builder{
		defs:      make(map[string]Def, len(doc)),
		built:     make(map[string]*Node, len(doc)),
		resolving: make(map[string]bool),
	}
	for _, g := range doc {
		if strings.TrimSpace(g.Name) == "" {
			return nil, fmt.Errorf("group with empty name")
		}
		if _, dup := b.defs[g.Name]; dup {
			return nil, fmt.Errorf("group %q defined more than once", g.Name)
		}
		b.defs[g.Name] = g.Def
	}

	root := newGroup(RootName, Additive)
	for _, g := range doc {
		n, err := b.group(g.Name)
		if err != nil {
			return nil, err
		}
		root.add(g.Name, n)
	}

	m := &Model{root: root}
	if err := checkExclusive(root, make(map[*Node]bool)); err != nil {
		return nil, err
	}
	if err := checkDistinct(root); err != nil {
		return nil, err
	}
	return m, nil
}

// group returns the shared node of a top-level group, building it on first use
func (b *builder) group(name string) (*Node, error) {
	if n, ok := b.built[name]; ok {
		return n, nil
	}
	if b.resolving[name] {
		start := 0
		for i, s := range b.stack {
			if s == name {
				start = i
				break
			}
		}
		chain := append(append([]string{}, b.stack[start:]...), name)
		return nil, fmt.Errorf("%w: %s", ErrCyclicReference, strings.Join(chain, " -> "))
	}

	b.resolving[name] = true
	b.stack = append(b.stack, name)
	n, err := b.node(name, b.defs[name])
	b.stack = b.stack[:len(b.stack)-1]
	delete(b.resolving, name)
	if err != nil {
		return nil, err
	}

	b.built[name] = n
	return n, nil
}

func (b *builder) node(name string, def Def) (*Node, error) {
	switch {
	case def.Ref != "":
		if _, ok := b.defs[def.Ref]; !ok {
			return nil, &PathError{
				Path:    []string{def.Ref},
				Segment: def.Ref,
				Reason:  fmt.Sprintf("referenced by group %q", name),
				Err:     ErrPathNotFound,
			}
		}
		return b.group(def.Ref)

	case def.Groups != nil:
		n := newGroup(name, Alternative)
		for _, g := range def.Groups {
			if strings.TrimSpace(g.Name) == "" {
				return nil, fmt.Errorf("group %q: subgroup with empty name", name)
			}
			child, err := b.node(g.Name, g.Def)
			if err != nil {
				return nil, err
			}
			if !n.add(g.Name, child) {
				return nil, fmt.Errorf("group %q: subgroup %q defined more than once", name, g.Name)
			}
		}
		return n, nil

	default:
		n := newGroup(name, Additive)
		for _, c := range def.Cases {
			if strings.TrimSpace(c) == "" {
				return nil, fmt.Errorf("group %q: empty load case name", name)
			}
			child := newLeaf(c)
			if _, ok := b.defs[c]; ok {
				ref, err := b.group(c)
				if err != nil {
					return nil, err
				}
				child = ref
			}
			if !n.add(c, child) {
				return nil, fmt.Errorf("%w: %q listed twice in group %q", ErrDuplicateLoadCase, c, name)
			}
		}
		return n, nil
	}
}

// checkExclusive verifies that no load case is reachable from two different
// branches of the same alternative node.
func checkExclusive(n *Node, seen map[*Node]bool) error {
	if seen[n] {
		return nil
	}
	seen[n] = true

	if n.Kind == Alternative {
		owner := make(map[LoadCase]string)
		for _, e := range n.children {
			for _, c := range leaves(e.Node) {
				if first, ok := owner[c]; ok {
					return fmt.Errorf("%w: %q is in both %q and %q of group %q",
						ErrDuplicateLoadCase, c, first, e.Name, n.Name)
				}
				owner[c] = e.Name
			}
		}
	}

	for _, e := range n.children {
		if err := checkExclusive(e.Node, seen); err != nil {
			return err
		}
	}
	return nil
}

// checkDistinct verifies that a load case name below any alternative branch
// always denotes the same leaf. References reach the shared leaf and pass;
// two separate lists naming the same case do not.
func checkDistinct(root *Node) error {
	type visit struct {
		n     *Node
		under bool
	}
	owner := make(map[LoadCase]*Node)
	where := make(map[LoadCase]string)
	done := make(map[visit]bool)

	var walk func(n *Node, path []string, under bool) error
	walk = func(n *Node, path []string, under bool) error {
		v := visit{n, under}
		if done[v] {
			return nil
		}
		done[v] = true

		if c, ok := n.Case(); ok {
			if !under {
				return nil
			}
			group := strings.Join(path[:len(path)-1], ".")
			if first, ok := owner[c]; ok && first != n {
				return fmt.Errorf("%w: %q is under both %s and %s",
					ErrDuplicateLoadCase, c, where[c], group)
			}
			if _, ok := owner[c]; !ok {
				owner[c], where[c] = n, group
			}
			return nil
		}

		below := under || n.Kind == Alternative
		for _, e := range n.children {
			if err := walk(e.Node, append(path[:len(path):len(path)], e.Name), below); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root, nil, false)
}
