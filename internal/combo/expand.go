// Package combo expands factor recipes over a load group hierarchy into
// concrete load combinations.
//
// Additive groups contribute all of their children to the same combination.
// Alternative groups branch: every child with a factor at or below it starts
// its own set of combinations, and branches of different alternative groups
// multiply. A factor applies to every load case below the path it names
// unless a more specific path overrides it.
package combo

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/alexiusacademia/gocombo/internal/loadgroup"
	"github.com/alexiusacademia/gocombo/internal/recipe"
)

// ErrAmbiguousFactor is returned when a recipe assigns the same path twice
var ErrAmbiguousFactor = errors.New("ambiguous factor")

// Expander turns recipes into combinations over one model.
// The model is only read, so one Expander may serve many goroutines.
type Expander struct {
	Model *loadgroup.Model

	// Strict rejects a factor placed on an alternative group itself instead
	// of on one of its subgroups. Otherwise the factor is inherited by every
	// subgroup and each one becomes its own branch. An alternative group that
	// is itself a subgroup of another alternative may still be named.
	Strict bool

	Logger *slog.Logger
}

// New creates an expander using the default logger
func New(m *loadgroup.Model) *Expander {
	return &Expander{Model: m, Logger: slog.Default()}
}

func (e *Expander) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// plan is the factor table of one recipe
type plan struct {
	factors map[string]float64 // path key -> factor
	touched map[string]bool    // every prefix of an assigned path
}

func (e *Expander) plan(r recipe.Recipe) (*plan, error) {
	p := &plan{
		factors: make(map[string]float64, len(r.Assignments)),
		touched: make(map[string]bool),
	}
	seen := make(map[string]bool, len(r.Assignments))
	root := e.Model.Root()

	for _, a := range r.Assignments {
		key := a.Path.Key()
		if seen[key] {
			return nil, fmt.Errorf("%w: %q assigned more than once in recipe %q", ErrAmbiguousFactor, a.Path.String(), r.Name)
		}
		seen[key] = true

		if len(a.Path) == 0 {
			return nil, &loadgroup.PathError{Reason: "empty path in recipe " + r.Name, Err: loadgroup.ErrPathNotFound}
		}
		if _, ok := root.Child(a.Path[0]); !ok {
			e.logger().Debug("ignoring factor for group outside the hierarchy",
				"recipe", r.Name, "path", a.Path.String())
			continue
		}

		n, err := e.Model.Resolve(a.Path...)
		if err != nil {
			return nil, err
		}
		if e.Strict && n.Kind == loadgroup.Alternative && !e.choosesBranch(a.Path) {
			return nil, &loadgroup.PathError{
				Path:    a.Path,
				Segment: a.Path[len(a.Path)-1],
				Reason:  "names an alternative group, not one of its subgroups",
				Err:     loadgroup.ErrPathNotFound,
			}
		}

		p.factors[key] = a.Factor
		for i := 1; i <= len(a.Path); i++ {
			p.touched[a.Path[:i].Key()] = true
		}
	}
	return p, nil
}

// choosesBranch reports whether path ends on a subgroup of an alternative
// group, which picks one branch even when the subgroup branches again.
func (e *Expander) choosesBranch(path recipe.Path) bool {
	if len(path) < 2 {
		return false
	}
	parent, err := e.Model.Resolve(path[:len(path)-1]...)
	return err == nil && parent.Kind == loadgroup.Alternative
}

// Expand returns every distinct combination the recipe implies, in traversal
// order. A recipe that reaches no load case returns no rows.
func (e *Expander) Expand(r recipe.Recipe) ([]Row, error) {
	seq, err := e.Combinations(r)
	if err != nil {
		return nil, err
	}
	var rows []Row
	for row := range seq {
		rows = append(rows, row)
	}
	return rows, nil
}

// Combinations validates the recipe and returns the lazy sequence of its
// distinct combinations. Branches are only materialized as they are yielded.
func (e *Expander) Combinations(r recipe.Recipe) (iter.Seq[Row], error) {
	p, err := e.plan(r)
	if err != nil {
		return nil, err
	}
	root := e.Model.Root()

	return func(yield func(Row) bool) {
		w := &walker{plan: p}
		seen := make(map[string]bool)
		w.all(root.Children(), 0, nil, nil, state{}, func(s state) bool {
			if s.bound == nil {
				return true
			}
			row := s.row(r.Name)
			key := row.Factors.Key()
			if seen[key] {
				return true
			}
			seen[key] = true
			return yield(row)
		})
	}, nil
}

// binding and choice are persistent lists shared between sibling branches
type binding struct {
	lc     loadgroup.LoadCase
	factor float64
	next   *binding
}

type choice struct {
	name string
	next *choice
}

type state struct {
	bound  *binding
	chosen *choice
}

func (s state) row(recipeName string) Row {
	factors := make(Combination)
	for b := s.bound; b != nil; b = b.next {
		// the list runs newest first; the first binding of a case wins
		factors[b.lc] = b.factor
	}

	var choices []string
	for c := s.chosen; c != nil; c = c.next {
		choices = append(choices, c.name)
	}
	for i, j := 0, len(choices)-1; i < j; i, j = i+1, j-1 {
		choices[i], choices[j] = choices[j], choices[i]
	}

	name := recipeName
	if len(choices) > 0 {
		name += "-" + strings.Join(choices, "-")
	}
	return Row{Recipe: recipeName, Name: name, Choices: choices, Factors: factors}
}

type walker struct {
	plan *plan
}

func childPath(path recipe.Path, name string) recipe.Path {
	return append(path[:len(path):len(path)], name)
}

// walk visits n at path and calls k once per partial combination produced
// below it. It returns false as soon as k asks to stop.
func (w *walker) walk(n *loadgroup.Node, path recipe.Path, inherited *float64, s state, k func(state) bool) bool {
	key := path.Key()
	if f, ok := w.plan.factors[key]; ok {
		inherited = &f
	}
	if inherited == nil && !w.plan.touched[key] {
		return k(s)
	}

	switch n.Kind {
	case loadgroup.Leaf:
		if inherited == nil {
			return k(s)
		}
		lc, _ := n.Case()
		return k(state{bound: &binding{lc: lc, factor: *inherited, next: s.bound}, chosen: s.chosen})

	case loadgroup.Additive:
		return w.all(n.Children(), 0, path, inherited, s, k)

	default:
		var active []loadgroup.Edge
		for _, e := range n.Children() {
			if inherited != nil || w.plan.touched[childPath(path, e.Name).Key()] {
				active = append(active, e)
			}
		}
		if len(active) == 0 {
			return k(s)
		}
		for _, e := range active {
			next := s
			if len(active) > 1 {
				next.chosen = &choice{name: e.Name, next: s.chosen}
			}
			if !w.walk(e.Node, childPath(path, e.Name), inherited, next, k) {
				return false
			}
		}
		return true
	}
}

// all combines the children of an additive node: every partial result of
// edges[i] continues into edges[i+1].
func (w *walker) all(edges []loadgroup.Edge, i int, path recipe.Path, inherited *float64, s state, k func(state) bool) bool {
	if i == len(edges) {
		return k(s)
	}
	e := edges[i]
	return w.walk(e.Node, childPath(path, e.Name), inherited, s, func(s state) bool {
		return w.all(edges, i+1, path, inherited, s, k)
	})
}
