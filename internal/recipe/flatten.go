package recipe

// Entry is one key of a nested factor document. A leaf entry carries a
// Factor; an inner entry carries ordered Entries descending into subgroups.
type Entry struct {
	Key     string
	Factor  *float64
	Entries []Entry
}

// Leaf is shorthand for an entry holding a factor
func Leaf(key string, factor float64) Entry {
	return Entry{Key: key, Factor: &factor}
}

// Nested is shorthand for an entry holding subgroup entries
func Nested(key string, entries ...Entry) Entry {
	return Entry{Key: key, Entries: entries}
}

// Flatten walks the nested entries of one recipe and returns the recipe as
// path/factor pairs in document order. Dotted keys descend one level per
// segment, so {Live: {Perm: 1.6}} and {Live.Perm: 1.6} give the same path.
// Repeated paths are kept; the expander rejects them.
func Flatten(name string, entries []Entry) Recipe {
	r := Recipe{Name: name}
	var walk func(prefix Path, entries []Entry)
	walk = func(prefix Path, entries []Entry) {
		for _, e := range entries {
			path := append(append(Path{}, prefix...), ParsePath(e.Key)...)
			if e.Factor != nil {
				r.Assignments = append(r.Assignments, Assignment{Path: path, Factor: *e.Factor})
			}
			walk(path, e.Entries)
		}
	}
	walk(nil, entries)
	return r
}
