package combo

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gocombo/internal/loadgroup"
)

// Combination maps each load case of one design combination to its factor
type Combination map[loadgroup.LoadCase]float64

// Key returns a canonical key for deduplication. Factors compare by exact
// value since they are taken verbatim from the recipe.
func (c Combination) Key() string {
	cases := make([]string, 0, len(c))
	for lc := range c {
		cases = append(cases, string(lc))
	}
	sort.Strings(cases)

	var sb strings.Builder
	for _, lc := range cases {
		sb.WriteString(lc)
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatUint(math.Float64bits(c[loadgroup.LoadCase(lc)]), 16))
		sb.WriteByte(';')
	}
	return sb.String()
}

// Cases returns the load cases of c following the given column order.
// Cases missing from order are appended in name order.
func (c Combination) Cases(order []loadgroup.LoadCase) []loadgroup.LoadCase {
	out := make([]loadgroup.LoadCase, 0, len(c))
	listed := make(map[loadgroup.LoadCase]bool, len(order))
	for _, lc := range order {
		listed[lc] = true
		if _, ok := c[lc]; ok {
			out = append(out, lc)
		}
	}
	var rest []loadgroup.LoadCase
	for lc := range c {
		if !listed[lc] {
			rest = append(rest, lc)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(out, rest...)
}

// Apply returns the factored effect for unfactored effects per load case.
// Load cases without an effect contribute nothing.
func (c Combination) Apply(effects map[loadgroup.LoadCase]float64) float64 {
	var total float64
	for lc, f := range c {
		total += f * effects[lc]
	}
	return total
}

// Row is one output combination tagged with its recipe
type Row struct {
	Recipe  string
	Name    string   // recipe name plus the chosen subgroups, e.g. LRFD2-Perm
	Choices []string // alternative choices that named the row
	Factors Combination
}
