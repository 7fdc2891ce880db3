// Package recipe holds named load factor recipes (LRFD1, LRFD2, ...) as flat
// lists of path/factor assignments.
package recipe

import "strings"

// Separator splits path segments in dotted keys such as Live.Perm
const Separator = "."

// Path is a sequence of group names descending from the root
type Path []string

// ParsePath splits a dotted path, dropping empty segments
func ParsePath(s string) Path {
	var p Path
	for _, seg := range strings.Split(s, Separator) {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			p = append(p, seg)
		}
	}
	return p
}

func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Key returns a map key for the path. Unlike String it cannot collide for
// segment names that themselves contain dots.
func (p Path) Key() string {
	return strings.Join(p, "\x00")
}

// HasPrefix reports whether q is a prefix of p (or equal to it)
func (p Path) HasPrefix(q Path) bool {
	if len(q) > len(p) {
		return false
	}
	for i := range q {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Assignment sets one factor at one path
type Assignment struct {
	Path   Path
	Factor float64
}

// Recipe is a named set of factor assignments
type Recipe struct {
	Name        string
	Assignments []Assignment
}

// Set appends an assignment; chainable for building recipes in code
func (r Recipe) Set(path string, factor float64) Recipe {
	r.Assignments = append(append([]Assignment(nil), r.Assignments...), Assignment{Path: ParsePath(path), Factor: factor})
	return r
}

// New creates an empty recipe
func New(name string) Recipe {
	return Recipe{Name: name}
}
